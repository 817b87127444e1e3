package awsecs

import (
	"encoding/json"
	"unicode"
	"unicode/utf8"

	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"

	"github.com/e6qu/ecsdef/reconcile"
)

// The open-ended Spec records travel to and from the SDK's generated shape
// structs via a JSON round trip. Unmarshal into SDK structs is
// case-insensitive, so the wire-style lowerCamel spec keys land on the
// UpperCamel Go fields directly. The reverse direction marshals Go field
// names, so keys are lower-cased back to wire style and null fields
// dropped before handing records to the engine.

func toContainerDefinitions(specs []reconcile.Spec) ([]ecstypes.ContainerDefinition, error) {
	if specs == nil {
		return nil, nil
	}
	raw, err := json.Marshal(specs)
	if err != nil {
		return nil, err
	}
	var defs []ecstypes.ContainerDefinition
	if err := json.Unmarshal(raw, &defs); err != nil {
		return nil, err
	}
	return defs, nil
}

func toVolumes(specs []reconcile.Spec) ([]ecstypes.Volume, error) {
	if specs == nil {
		return nil, nil
	}
	raw, err := json.Marshal(specs)
	if err != nil {
		return nil, err
	}
	var vols []ecstypes.Volume
	if err := json.Unmarshal(raw, &vols); err != nil {
		return nil, err
	}
	return vols, nil
}

func fromTaskDefinition(td *ecstypes.TaskDefinition) (*reconcile.TaskDefinition, error) {
	if td == nil {
		return nil, nil
	}
	containers, err := specsFrom(td.ContainerDefinitions)
	if err != nil {
		return nil, err
	}
	volumes, err := specsFrom(td.Volumes)
	if err != nil {
		return nil, err
	}
	var arn, family, status string
	if td.TaskDefinitionArn != nil {
		arn = *td.TaskDefinitionArn
	}
	if td.Family != nil {
		family = *td.Family
	}
	status = string(td.Status)
	return &reconcile.TaskDefinition{
		ARN:        arn,
		Family:     family,
		Revision:   int(td.Revision),
		Status:     reconcile.Status(status),
		Containers: containers,
		Volumes:    volumes,
	}, nil
}

func specsFrom[T any](shapes []T) ([]reconcile.Spec, error) {
	if len(shapes) == 0 {
		return []reconcile.Spec{}, nil
	}
	raw, err := json.Marshal(shapes)
	if err != nil {
		return nil, err
	}
	var generic []any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	specs := make([]reconcile.Spec, 0, len(generic))
	for _, g := range generic {
		m, ok := wireKeys(g).(map[string]any)
		if !ok {
			continue
		}
		specs = append(specs, reconcile.Spec(m))
	}
	return specs, nil
}

// wireKeys rewrites Go field names back to wire-style lowerCamel keys,
// recursively, dropping null fields along the way.
func wireKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			if val == nil {
				continue
			}
			m[lowerFirst(k)] = wireKeys(val)
		}
		return m
	case []any:
		out := make([]any, 0, len(t))
		for _, val := range t {
			out = append(out, wireKeys(val))
		}
		return out
	default:
		return v
	}
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
