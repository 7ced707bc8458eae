// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	methodCycle         = "Cycle"
	methodPath          = "Path"
	methodStar          = "Star"
	methodWheel         = "Wheel"
	methodComplete      = "Complete"
	methodGrid          = "Grid"
	methodHouse         = "House"
	methodRandomSparse  = "RandomSparse"
	methodRandomRegular = "RandomRegular"
)

//-----------------------------------------------------------------------------
// Node ID and Label Defaults
//-----------------------------------------------------------------------------

// CenterVertexID is the identifier for the hub node of Star and Wheel.
// It is prefixed by the active scope like any other ID.
const CenterVertexID = "Center"

// DefaultLabel is the initial label given to every node when no label
// option is supplied.
const DefaultLabel = 1

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a ring without loops or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star topology:
// one center plus at least one leaf.
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel topology:
// a cycle of at least 3 nodes plus one hub.
const MinWheelNodes = 4

// MinCompleteNodes is the smallest size accepted by Complete.
const MinCompleteNodes = 1

// MinGridDim is the smallest allowed dimension (rows or cols) for a 2D Grid.
// A grid of size 1×1 has no edges, but is considered valid.
const MinGridDim = 1

// HouseNodes is the node count of the house graph (4-cycle base + apex).
const HouseNodes = 5

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound for RandomSparse's p.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for RandomSparse's p.
const MaxProbability = 1.0

// maxStubMatchingAttempts bounds RandomRegular's reshuffles.
const maxStubMatchingAttempts = 1024
