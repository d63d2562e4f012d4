package geometry

import (
	"math"
	"reflect"
	"testing"
)

func TestGenerateSphereRejectsDegenerateDivisions(t *testing.T) {
	cases := [][2]int{{0, 4}, {4, 0}, {0, 0}, {-1, 4}}
	for _, c := range cases {
		if _, err := GenerateSphere(c[0], c[1]); err == nil {
			t.Errorf("Expected error for divisions %dx%d, got nil", c[0], c[1])
		}
	}
}

func TestGenerateSphereVertexCounts(t *testing.T) {
	cases := [][2]int{{1, 1}, {4, 4}, {10, 25}, {25, 10}}
	for _, c := range cases {
		latDiv, lonDiv := c[0], c[1]
		mesh, err := GenerateSphere(latDiv, lonDiv)
		if err != nil {
			t.Fatalf("GenerateSphere(%d, %d) failed: %v", latDiv, lonDiv, err)
		}

		want := (latDiv + 1) * (lonDiv + 1)
		if mesh.VertexCount != int32(want) {
			t.Errorf("Expected %d vertices for %dx%d, got %d", want, latDiv, lonDiv, mesh.VertexCount)
		}
		if len(mesh.Positions) != want*3 {
			t.Errorf("Expected %d position components, got %d", want*3, len(mesh.Positions))
		}
		if len(mesh.TexCoords) != want*2 {
			t.Errorf("Expected %d texcoord components, got %d", want*2, len(mesh.TexCoords))
		}
		// Positions and texcoords are index-aligned parallel arrays
		if len(mesh.Positions)*2 != len(mesh.TexCoords)*3 {
			t.Errorf("Position/texcoord streams out of alignment: %d vs %d", len(mesh.Positions), len(mesh.TexCoords))
		}
	}
}

func TestGenerateSpherePositionsOnUnitSphere(t *testing.T) {
	mesh, err := GenerateSphere(8, 6)
	if err != nil {
		t.Fatalf("GenerateSphere failed: %v", err)
	}

	for i := 0; i < len(mesh.Positions); i += 3 {
		x := float64(mesh.Positions[i])
		y := float64(mesh.Positions[i+1])
		z := float64(mesh.Positions[i+2])
		r := math.Sqrt(x*x + y*y + z*z)
		if math.Abs(r-1) > 1e-6 {
			t.Fatalf("Vertex %d has radius %v, expected 1", i/3, r)
		}
	}
}

func TestGenerateSphereTexCoords(t *testing.T) {
	mesh, err := GenerateSphere(4, 4)
	if err != nil {
		t.Fatalf("GenerateSphere failed: %v", err)
	}

	for i := 0; i < len(mesh.TexCoords); i++ {
		if mesh.TexCoords[i] < 0 || mesh.TexCoords[i] > 1 {
			t.Fatalf("Texcoord component %d out of [0,1]: %v", i, mesh.TexCoords[i])
		}
	}

	// First vertex (lat=0, lon=0) maps to u=1, v=1
	if mesh.TexCoords[0] != 1 || mesh.TexCoords[1] != 1 {
		t.Errorf("Expected first texcoord (1,1), got (%v,%v)", mesh.TexCoords[0], mesh.TexCoords[1])
	}
	// Last vertex (lat=latDiv, lon=lonDiv) maps to u=0, v=0
	n := len(mesh.TexCoords)
	if mesh.TexCoords[n-2] != 0 || mesh.TexCoords[n-1] != 0 {
		t.Errorf("Expected last texcoord (0,0), got (%v,%v)", mesh.TexCoords[n-2], mesh.TexCoords[n-1])
	}
}

func TestGenerateSpherePoles(t *testing.T) {
	mesh, err := GenerateSphere(4, 4)
	if err != nil {
		t.Fatalf("GenerateSphere failed: %v", err)
	}

	if mesh.VertexCount != 25 {
		t.Fatalf("Expected 25 vertices for 4x4, got %d", mesh.VertexCount)
	}

	// First vertex sits at the north pole, last at the south pole
	checkVertex := func(idx int, want [3]float64) {
		t.Helper()
		for c := 0; c < 3; c++ {
			got := float64(mesh.Positions[idx*3+c])
			if math.Abs(got-want[c]) > 1e-6 {
				t.Errorf("Vertex %d component %d: expected %v, got %v", idx, c, want[c], got)
			}
		}
	}
	checkVertex(0, [3]float64{0, 1, 0})
	checkVertex(24, [3]float64{0, -1, 0})
}

func TestGenerateSphereDeterministic(t *testing.T) {
	a, err := GenerateSphere(6, 9)
	if err != nil {
		t.Fatalf("GenerateSphere failed: %v", err)
	}
	b, err := GenerateSphere(6, 9)
	if err != nil {
		t.Fatalf("GenerateSphere failed: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("Expected identical meshes for identical parameters")
	}
}
