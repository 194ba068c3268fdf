package scoring

import "errors"

// ErrUnknownTest is returned by MappingFor for test ids without a dimension
// table (categorical and birth-data tests included).
var ErrUnknownTest = errors.New("unknown test")

// DimensionTable is the authoritative scoring key for one Likert test:
// question id -> (dimension, reverse-scored). Tables are built once at init
// and never mutated; changing one changes the meaning of every historical
// score, so item sets are reproduced from the source instruments exactly.
type DimensionTable struct {
	dims  []string // declaration order; ties and iteration follow this
	items map[int]tableItem
}

type tableItem struct {
	dim     string
	reverse bool
}

// Dimensions returns the table's dimensions in declaration order.
func (t DimensionTable) Dimensions() []string { return t.dims }

// Lookup resolves a question id to its dimension and reverse flag.
func (t DimensionTable) Lookup(id int) (dim string, reverse bool, ok bool) {
	it, ok := t.items[id]
	return it.dim, it.reverse, ok
}

// MappingFor exposes the static table for a Likert-scale test.
func MappingFor(testID string) (DimensionTable, error) {
	switch testID {
	case TestBigFive:
		return bigFiveTable, nil
	case TestValues:
		return valuesTable, nil
	case TestRIASEC:
		return riasecTable, nil
	case TestDarkTriad:
		return darkTriadTable, nil
	case TestGrit:
		return gritTable, nil
	case TestChronotype:
		return chronotypeTable, nil
	default:
		return DimensionTable{}, ErrUnknownTest
	}
}

type span struct {
	dim      string
	from, to int // inclusive question-id range
}

func makeTable(dims []string, spans []span, reverse ...int) DimensionTable {
	items := make(map[int]tableItem)
	for _, s := range spans {
		for id := s.from; id <= s.to; id++ {
			items[id] = tableItem{dim: s.dim}
		}
	}
	for _, id := range reverse {
		it := items[id]
		it.reverse = true
		items[id] = it
	}
	return DimensionTable{dims: dims, items: items}
}

var bigFiveTable = makeTable(
	[]string{"openness", "conscientiousness", "extraversion", "agreeableness", "neuroticism"},
	[]span{
		{"extraversion", 1, 8},
		{"agreeableness", 9, 16},
		{"conscientiousness", 17, 24},
		{"neuroticism", 25, 32},
		{"openness", 33, 42},
	},
	2, 4, 6, 8, 10, 11, 12, 14, 18, 20, 22, 24, 26, 28, 34, 36, 38,
)

var valuesTable = makeTable(
	[]string{
		"power", "achievement", "hedonism", "stimulation", "self_direction",
		"universalism", "benevolence", "tradition", "conformity", "security",
	},
	[]span{
		{"power", 1, 4},
		{"achievement", 5, 8},
		{"hedonism", 9, 12},
		{"stimulation", 13, 16},
		{"self_direction", 17, 20},
		{"universalism", 21, 24},
		{"benevolence", 25, 28},
		{"tradition", 29, 32},
		{"conformity", 33, 36},
		{"security", 37, 42},
	},
)

var riasecTable = makeTable(
	[]string{"realistic", "investigative", "artistic", "social", "enterprising", "conventional"},
	[]span{
		{"realistic", 1, 7},
		{"investigative", 8, 14},
		{"artistic", 15, 21},
		{"social", 22, 28},
		{"enterprising", 29, 35},
		{"conventional", 36, 42},
	},
)

var darkTriadTable = makeTable(
	[]string{"machiavellianism", "narcissism", "psychopathy"},
	[]span{
		{"machiavellianism", 1, 14},
		{"narcissism", 15, 28},
		{"psychopathy", 29, 42},
	},
	11, 16, 18, 31, 33, 37, 39,
)

var gritTable = makeTable(
	[]string{"grit_consistency", "grit_perseverance", "performance_goal", "learning_goal", "avoidance_goal"},
	[]span{
		{"grit_consistency", 1, 6},
		{"grit_perseverance", 7, 12},
		{"performance_goal", 13, 22},
		{"learning_goal", 23, 32},
		{"avoidance_goal", 33, 42},
	},
	1, 3, 5, 6,
)

// Chronotype: ids 1-10 are MEQ morningness items with instrument-native
// scoring (never reverse-scored, see chronotype.go); the reverse set only
// touches the sleep_quality block.
var chronotypeTable = makeTable(
	[]string{"morningness", "sleep_quality", "sleep_hygiene"},
	[]span{
		{"morningness", 1, 10},
		{"sleep_quality", 11, 25},
		{"sleep_hygiene", 26, 42},
	},
	11, 12, 13, 16, 17, 19, 20, 21, 22, 24,
)
