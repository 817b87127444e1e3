package reconcile

// MergeKeyed combines an existing collection of keyed records with a
// partial update, matching records by exact equality of the designated key
// field. For each record in items with a matching update, the result holds
// the item's fields overlaid with the update's fields (update wins,
// shallow). Items without a match pass through unchanged, in their
// original order. Updates whose key matches nothing in items are appended
// afterwards, in their original order. No record is ever dropped.
//
// Every record must carry the key field; behavior is unspecified if one
// does not.
func MergeKeyed(items, updates []Spec, key string) []Spec {
	result := make([]Spec, 0, len(items)+len(updates))
	for _, item := range items {
		update, ok := findByKey(updates, key, item[key])
		if !ok {
			result = append(result, item)
			continue
		}
		merged := make(Spec, len(item)+len(update))
		for k, v := range item {
			merged[k] = v
		}
		for k, v := range update {
			merged[k] = v
		}
		result = append(result, merged)
	}
	for _, update := range updates {
		if _, ok := findByKey(items, key, update[key]); !ok {
			result = append(result, update)
		}
	}
	return result
}

func findByKey(specs []Spec, key string, value any) (Spec, bool) {
	for _, s := range specs {
		if s[key] == value {
			return s, true
		}
	}
	return nil, false
}
