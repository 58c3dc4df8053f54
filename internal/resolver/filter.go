package resolver

import "slices"

// Filter keeps the groups whose title is in include (all when include is
// empty) and not in exclude. The groups themselves are not copied.
func Filter(groups []*Group, include, exclude []string) []*Group {
	if len(include) == 0 && len(exclude) == 0 {
		return groups
	}

	out := make([]*Group, 0, len(groups))
	for _, g := range groups {
		if slices.Contains(exclude, g.Title) {
			continue
		}
		if len(include) > 0 && !slices.Contains(include, g.Title) {
			continue
		}
		out = append(out, g)
	}
	return out
}

// Interfaces returns every operation node of groups once, in first-seen
// order. Nodes shared by several groups are not repeated.
func Interfaces(groups []*Group) []*Interface {
	seen := make(map[*Interface]bool)
	var out []*Interface
	for _, g := range groups {
		for _, node := range g.Children {
			if seen[node] {
				continue
			}
			seen[node] = true
			out = append(out, node)
		}
	}
	return out
}

// FindByPathName looks an operation up by its stable identifier.
func FindByPathName(groups []*Group, pathName string) *Interface {
	for _, g := range groups {
		for _, node := range g.Children {
			if node.PathName == pathName {
				return node
			}
		}
	}
	return nil
}
