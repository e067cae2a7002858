package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"render-exercises/core"
)

// ExportGLTF writes the terrain mesh to path. A .glb extension selects the
// binary container, anything else writes .gltf JSON with an embedded buffer.
func ExportGLTF(t *Terrain, path string) error {
	doc := gltf.NewDocument()

	n := len(t.Mesh.Vertices)
	positions := make([][3]float32, n)
	normals := make([][3]float32, n)
	uvs := make([][2]float32, n)
	colors := make([][4]float32, n)
	for i, v := range t.Mesh.Vertices {
		positions[i] = v.Position
		normals[i] = v.Normal
		uvs[i] = v.UV
		colors[i] = v.Color
	}

	prim := &gltf.Primitive{
		Indices: gltf.Index(modeler.WriteIndices(doc, t.Mesh.Indices)),
		Attributes: map[string]int{
			"POSITION":   modeler.WritePosition(doc, positions),
			"NORMAL":     modeler.WriteNormal(doc, normals),
			"TEXCOORD_0": modeler.WriteTextureCoord(doc, uvs),
			"COLOR_0":    modeler.WriteColor(doc, colors),
		},
	}
	name := fmt.Sprintf("Terrain%dx%d", t.GridX, t.GridY)
	doc.Meshes = []*gltf.Mesh{{Name: name, Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Name: name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	var err error
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		err = gltf.SaveBinary(doc, path)
	} else {
		err = gltf.Save(doc, path)
	}
	if err != nil {
		return fmt.Errorf("gltf save %q: %w", path, err)
	}
	return nil
}

// LoadTerrainGLTF reads back the first primitive of the first mesh in path.
// Grid dimensions are not stored in glTF and are left zero.
func LoadTerrainGLTF(path string) (*Terrain, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return nil, fmt.Errorf("gltf %q: no mesh primitives", path)
	}
	prim := doc.Meshes[0].Primitives[0]

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("gltf %q: no POSITION attribute", path)
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	var uvs [][2]float32
	var colors []mgl32.Vec4
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			return nil, fmt.Errorf("normals: %w", err)
		}
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			return nil, fmt.Errorf("texcoords: %w", err)
		}
	}
	if idx, ok := prim.Attributes["COLOR_0"]; ok {
		if colors, err = readColors(doc, doc.Accessors[idx]); err != nil {
			return nil, fmt.Errorf("colors: %w", err)
		}
	}

	// Missing attributes fall back to an up normal and the height band color.
	verts := make([]core.Vertex, len(positions))
	for i, p := range positions {
		v := core.Vertex{
			Position: p,
			Normal:   mgl32.Vec3{0, 1, 0},
			Color:    BandColor(p[1]),
		}
		if i < len(normals) {
			v.Normal = normals[i]
		}
		if i < len(uvs) {
			v.UV = uvs[i]
		}
		if i < len(colors) {
			v.Color = colors[i]
		}
		verts[i] = v
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	}
	return &Terrain{Mesh: core.MeshData{Vertices: verts, Indices: indices}}, nil
}

// readColors reads COLOR_0 without the sRGB conversion modeler.ReadColor
// applies, so float colors written by ExportGLTF come back unchanged.
func readColors(doc *gltf.Document, acr *gltf.Accessor) ([]mgl32.Vec4, error) {
	data, err := modeler.ReadAccessor(doc, acr, nil)
	if err != nil {
		return nil, err
	}
	var out []mgl32.Vec4
	switch data := data.(type) {
	case [][4]float32:
		out = make([]mgl32.Vec4, len(data))
		for i, c := range data {
			out[i] = c
		}
	case [][3]float32:
		out = make([]mgl32.Vec4, len(data))
		for i, c := range data {
			out[i] = mgl32.Vec4{c[0], c[1], c[2], 1}
		}
	case [][4]uint8:
		out = make([]mgl32.Vec4, len(data))
		for i, c := range data {
			out[i] = mgl32.Vec4{float32(c[0]) / 255, float32(c[1]) / 255, float32(c[2]) / 255, float32(c[3]) / 255}
		}
	default:
		return nil, fmt.Errorf("unsupported color accessor %s/%s", acr.Type, acr.ComponentType)
	}
	return out, nil
}
