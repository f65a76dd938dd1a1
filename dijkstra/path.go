// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"slices"
)

// PathTo rebuilds the path source..dest from a predecessor map returned
// by Dijkstra under WithReturnPath. source == dest yields [source].
// A dest without a predecessor chain back to source yields ErrNoPath.
func PathTo(prev map[string]string, source, dest string) ([]string, error) {
	path := []string{dest}
	for cur := dest; cur != source; {
		p, ok := prev[cur]
		if !ok || len(path) > len(prev)+1 {
			return nil, fmt.Errorf("%w: %q from %q", ErrNoPath, dest, source)
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path, nil
}
