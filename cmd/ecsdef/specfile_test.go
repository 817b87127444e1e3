package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spec.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSpecFile(t *testing.T) {
	path := writeSpec(t, `
family: test-cluster-taskdef
containers:
  - name: simple-app
    image: "httpd:2.4"
    cpu: 10
    essential: true
    portMappings:
      - containerPort: 80
        hostPort: 80
volumes:
  - name: my-vol
`)

	sf, err := loadSpecFile(path)
	if err != nil {
		t.Fatalf("loadSpecFile: %v", err)
	}
	if sf.Family != "test-cluster-taskdef" {
		t.Errorf("family = %q", sf.Family)
	}
	if len(sf.Containers) != 1 {
		t.Fatalf("expected 1 container, got %d", len(sf.Containers))
	}
	c := sf.Containers[0]
	if c["name"] != "simple-app" || c["image"] != "httpd:2.4" {
		t.Errorf("container = %v", c)
	}
	if c["cpu"] != 10 || c["essential"] != true {
		t.Errorf("scalar fields mangled: %v", c)
	}
	if len(sf.Volumes) != 1 || sf.Volumes[0]["name"] != "my-vol" {
		t.Errorf("volumes = %v", sf.Volumes)
	}
}

func TestLoadSpecFileJSON(t *testing.T) {
	path := writeSpec(t, `{"containers": [{"name": "app", "image": "x:1"}]}`)

	sf, err := loadSpecFile(path)
	if err != nil {
		t.Fatalf("loadSpecFile: %v", err)
	}
	if len(sf.Containers) != 1 || sf.Containers[0]["name"] != "app" {
		t.Errorf("containers = %v", sf.Containers)
	}
}

func TestLoadSpecFileOmittedListsStayNil(t *testing.T) {
	path := writeSpec(t, `family: svc`)

	sf, err := loadSpecFile(path)
	if err != nil {
		t.Fatalf("loadSpecFile: %v", err)
	}
	// Omitted lists must stay nil: the engine distinguishes "not supplied"
	// from "supplied empty".
	if sf.Containers != nil {
		t.Errorf("containers = %v, want nil", sf.Containers)
	}
	if sf.Volumes != nil {
		t.Errorf("volumes = %v, want nil", sf.Volumes)
	}
}
