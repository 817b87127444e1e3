package awsecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e6qu/ecsdef/reconcile"
)

func TestToContainerDefinitions(t *testing.T) {
	specs := []reconcile.Spec{
		{
			"name":      "app",
			"image":     "httpd:2.4",
			"cpu":       10,
			"essential": true,
			"portMappings": []any{
				map[string]any{"containerPort": 80, "hostPort": 80},
			},
			"mountPoints": []any{
				map[string]any{"containerPath": "/data", "sourceVolume": "data"},
			},
		},
	}

	defs, err := toContainerDefinitions(specs)
	require.NoError(t, err)
	require.Len(t, defs, 1)

	d := defs[0]
	require.NotNil(t, d.Name)
	assert.Equal(t, "app", *d.Name)
	require.NotNil(t, d.Image)
	assert.Equal(t, "httpd:2.4", *d.Image)
	assert.EqualValues(t, 10, d.Cpu)
	require.NotNil(t, d.Essential)
	assert.True(t, *d.Essential)
	require.Len(t, d.PortMappings, 1)
	assert.EqualValues(t, 80, *d.PortMappings[0].ContainerPort)
	require.Len(t, d.MountPoints, 1)
	assert.Equal(t, "/data", *d.MountPoints[0].ContainerPath)
	assert.Equal(t, "data", *d.MountPoints[0].SourceVolume)
}

func TestToContainerDefinitionsNilMeansNotSupplied(t *testing.T) {
	defs, err := toContainerDefinitions(nil)
	require.NoError(t, err)
	assert.Nil(t, defs)
}

func TestToVolumes(t *testing.T) {
	vols, err := toVolumes([]reconcile.Spec{
		{"name": "data", "host": map[string]any{"sourcePath": "/var/data"}},
	})
	require.NoError(t, err)
	require.Len(t, vols, 1)
	require.NotNil(t, vols[0].Name)
	assert.Equal(t, "data", *vols[0].Name)
	require.NotNil(t, vols[0].Host)
	assert.Equal(t, "/var/data", *vols[0].Host.SourcePath)
}

func TestSpecsFromRestoresWireKeys(t *testing.T) {
	defs, err := toContainerDefinitions([]reconcile.Spec{
		{
			"name":  "app",
			"image": "x:1",
			"portMappings": []any{
				map[string]any{"containerPort": 80},
			},
		},
	})
	require.NoError(t, err)

	specs, err := specsFrom(defs)
	require.NoError(t, err)
	require.Len(t, specs, 1)

	s := specs[0]
	assert.Equal(t, "app", s["name"])
	assert.Equal(t, "x:1", s["image"])
	ports, ok := s["portMappings"].([]any)
	require.True(t, ok, "nested keys should come back in wire casing")
	assert.EqualValues(t, 80, ports[0].(map[string]any)["containerPort"])

	// Unset pointer fields must not leak back in as nulls.
	for k, v := range s {
		assert.NotNil(t, v, "field %q is null", k)
	}
	_, hasUpper := s["Name"]
	assert.False(t, hasUpper, "Go field casing must not leak into specs")
}
