package exact

import "fmt"

// Stats receives search effort events. Implementations are called from the
// solving goroutine only and need no synchronization.
type Stats interface {
	// SearchNode is called once per recursive search call.
	SearchNode()
	// Branch is called when a vertex is chosen for include/exclude branching.
	Branch()
	// ForcedInclusion is called for every vertex included without a choice.
	ForcedInclusion()
	// ComponentSplit is called when a subproblem falls apart into k > 1
	// independent components.
	ComponentSplit(k int)
	// Pruned is called when a branch is abandoned by the bound or by a
	// cycle among excluded vertices.
	Pruned()
}

// Counters is a Stats that counts every event.
type Counters struct {
	Nodes      uint64
	Branches   uint64
	Forced     uint64
	Splits     uint64
	Components uint64
	Prunes     uint64
}

var _ Stats = (*Counters)(nil)

func (c *Counters) SearchNode()      { c.Nodes++ }
func (c *Counters) Branch()          { c.Branches++ }
func (c *Counters) ForcedInclusion() { c.Forced++ }
func (c *Counters) Pruned()          { c.Prunes++ }

func (c *Counters) ComponentSplit(k int) {
	c.Splits++
	c.Components += uint64(k)
}

func (c *Counters) String() string {
	return fmt.Sprintf("nodes=%d branches=%d forced=%d splits=%d components=%d pruned=%d",
		c.Nodes, c.Branches, c.Forced, c.Splits, c.Components, c.Prunes)
}

// discardStats ignores every event.
type discardStats struct{}

func (discardStats) SearchNode()        {}
func (discardStats) Branch()            {}
func (discardStats) ForcedInclusion()   {}
func (discardStats) ComponentSplit(int) {}
func (discardStats) Pruned()            {}
