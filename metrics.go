package swapnet

import "sort"

// Metrics accumulates per-stage gate counts while a router builds the
// encoding circuit. Purely informational; nothing in the core reads it back.
type Metrics struct {
	GridSize    int
	TotalQubits int
	TotalGates  int
	KindCounts  map[GateKind]int

	stageOrder  []string
	stageCounts map[string]int
}

func newMetrics(gridSize, totalQubits int) *Metrics {
	return &Metrics{
		GridSize:    gridSize,
		TotalQubits: totalQubits,
		KindCounts:  make(map[GateKind]int),
		stageCounts: make(map[string]int),
	}
}

func (m *Metrics) record(stage string, c Circuit) {
	if _, ok := m.stageCounts[stage]; !ok {
		m.stageOrder = append(m.stageOrder, stage)
	}
	m.stageCounts[stage] += len(c)
	m.TotalGates += len(c)
	for _, g := range c {
		m.KindCounts[g.Kind]++
	}
}

// Stages returns (name, gate count) pairs in the order the stages ran.
func (m *Metrics) Stages() []StageCount {
	out := make([]StageCount, 0, len(m.stageOrder))
	for _, name := range m.stageOrder {
		out = append(out, StageCount{Name: name, Gates: m.stageCounts[name]})
	}
	return out
}

type StageCount struct {
	Name  string
	Gates int
}

// Kinds returns the per-kind totals in a stable order.
func (m *Metrics) Kinds() []KindCount {
	kinds := make([]GateKind, 0, len(m.KindCounts))
	for k := range m.KindCounts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	out := make([]KindCount, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, KindCount{Kind: k, Gates: m.KindCounts[k]})
	}
	return out
}

type KindCount struct {
	Kind  GateKind
	Gates int
}
