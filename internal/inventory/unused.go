package inventory

// NameSet builds the deduplicated union of the given name lists.
// Duplicates within and across lists collapse silently; the result is an
// order-irrelevant membership set.
func NameSet(lists ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, list := range lists {
		for _, name := range list {
			set[name] = struct{}{}
		}
	}
	return set
}

// Unused returns the elements of all that are absent from active.
//
// The filter is stable: results keep the original order of all, and
// duplicates within all are each tested independently rather than
// collapsed. Membership is by exact name, not position.
func Unused(all []string, active map[string]struct{}) []string {
	unused := make([]string, 0)
	for _, name := range all {
		if _, ok := active[name]; !ok {
			unused = append(unused, name)
		}
	}
	return unused
}
