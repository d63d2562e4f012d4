package geometry

import (
	"fmt"
	"math"
)

// Mesh is the vertex stream for a UV-sphere: positions and texture
// coordinates as two separate parallel arrays, one entry per vertex.
type Mesh struct {
	Positions   []float32 // x,y,z per vertex
	TexCoords   []float32 // u,v per vertex
	VertexCount int32
}

// GenerateSphere tessellates a unit sphere into (latDiv+1)*(lonDiv+1)
// vertices with the pole along the Y axis. Vertices are emitted in
// latitude-major, longitude-minor order; it is this ordering that lets a
// single triangle strip cover the surface without an index buffer, so the
// loop nesting must not be changed.
//
// Texture coordinates are flipped on both axes so that u=1,v=1 maps to the
// north pole seam and u=0,v=0 to the south pole seam, matching the
// orientation of equirectangular planet textures.
func GenerateSphere(latDiv, lonDiv int) (*Mesh, error) {
	if latDiv < 1 || lonDiv < 1 {
		return nil, fmt.Errorf("sphere divisions must be >= 1, got %dx%d", latDiv, lonDiv)
	}

	count := (latDiv + 1) * (lonDiv + 1)
	positions := make([]float32, 0, count*3)
	texCoords := make([]float32, 0, count*2)

	for lat := 0; lat <= latDiv; lat++ {
		theta := float64(lat) * math.Pi / float64(latDiv)
		sinTheta := math.Sin(theta)
		cosTheta := math.Cos(theta)

		for lon := 0; lon <= lonDiv; lon++ {
			phi := float64(lon) * 2 * math.Pi / float64(lonDiv)

			x := math.Cos(phi) * sinTheta
			y := cosTheta
			z := math.Sin(phi) * sinTheta

			u := 1 - float32(lon)/float32(lonDiv)
			v := 1 - float32(lat)/float32(latDiv)

			positions = append(positions, float32(x), float32(y), float32(z))
			texCoords = append(texCoords, u, v)
		}
	}

	return &Mesh{
		Positions:   positions,
		TexCoords:   texCoords,
		VertexCount: int32(count),
	}, nil
}
