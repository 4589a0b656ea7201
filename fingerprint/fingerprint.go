// Package fingerprint computes hashes identifying point layouts of meshes.
package fingerprint

import (
	"github.com/cespare/xxhash"

	"github.com/outofforest/photon"
	"github.com/outofforest/zorder/types"
)

// Points returns the hash of the coordinates of points taken in order.
// Equal layouts produce equal hashes, the opposite is not guaranteed.
func Points(points []types.Point) uint64 {
	d := xxhash.New()
	n := uint64(len(points))
	_, _ = d.Write(photon.NewFromValue(&n).B)
	for i := range points {
		_, _ = d.Write(photon.NewFromValue(&points[i]).B)
	}
	return d.Sum64()
}
