package pipeline

import "github.com/cogentcore/webgpu/wgpu"

// Topology is the closed set of primitive topologies selectable for a render pipeline.
// It determines how the vertex stream is grouped into primitives.
type Topology int

const (
	// TopologyPointList renders each vertex as an independent point. This is the default.
	TopologyPointList Topology = iota

	// TopologyLineList renders each pair of vertices as an independent line segment.
	TopologyLineList

	// TopologyLineStrip renders a connected polyline; each vertex after the first extends the line.
	TopologyLineStrip

	// TopologyTriangleList renders each triple of vertices as an independent triangle.
	TopologyTriangleList

	// TopologyTriangleStrip renders a connected strip; each vertex after the second forms a triangle.
	TopologyTriangleStrip
)

// topologyNames maps the CLI-facing names to their Topology values.
// TopologyPointList is deliberately absent: it is the fallback for any
// unrecognized or missing name, not a selectable spelling.
var topologyNames = map[string]Topology{
	"line-list":      TopologyLineList,
	"line-strip":     TopologyLineStrip,
	"triangle-list":  TopologyTriangleList,
	"triangle-strip": TopologyTriangleStrip,
}

// ParseTopology maps a primitive-type name to its Topology.
// Unrecognized names (including the empty string) fall back to TopologyPointList.
//
// Parameters:
//   - name: one of "line-list", "line-strip", "triangle-list", "triangle-strip"
//
// Returns:
//   - Topology: the matching topology, or TopologyPointList for any other input
func ParseTopology(name string) Topology {
	if t, ok := topologyNames[name]; ok {
		return t
	}
	return TopologyPointList
}

// String returns the canonical name of the topology, matching the CLI spelling.
func (t Topology) String() string {
	switch t {
	case TopologyLineList:
		return "line-list"
	case TopologyLineStrip:
		return "line-strip"
	case TopologyTriangleList:
		return "triangle-list"
	case TopologyTriangleStrip:
		return "triangle-strip"
	default:
		return "point-list"
	}
}

// Primitive returns the wgpu primitive topology for this Topology.
//
// Returns:
//   - wgpu.PrimitiveTopology: the corresponding WebGPU topology enum value
func (t Topology) Primitive() wgpu.PrimitiveTopology {
	switch t {
	case TopologyLineList:
		return wgpu.PrimitiveTopologyLineList
	case TopologyLineStrip:
		return wgpu.PrimitiveTopologyLineStrip
	case TopologyTriangleList:
		return wgpu.PrimitiveTopologyTriangleList
	case TopologyTriangleStrip:
		return wgpu.PrimitiveTopologyTriangleStrip
	default:
		return wgpu.PrimitiveTopologyPointList
	}
}

// IsStrip reports whether this topology is a strip variant.
// Strip topologies require a strip index format on the pipeline.
//
// Returns:
//   - bool: true for TopologyLineStrip and TopologyTriangleStrip
func (t Topology) IsStrip() bool {
	return t == TopologyLineStrip || t == TopologyTriangleStrip
}

// StripIndexFormat returns the index format used for primitive restart with
// strip topologies. Strip variants use the 32-bit format; list topologies and
// the point default carry no strip index format.
//
// Returns:
//   - wgpu.IndexFormat: wgpu.IndexFormatUint32 for strips, wgpu.IndexFormatUndefined otherwise
func (t Topology) StripIndexFormat() wgpu.IndexFormat {
	if t.IsStrip() {
		return wgpu.IndexFormatUint32
	}
	return wgpu.IndexFormatUndefined
}
