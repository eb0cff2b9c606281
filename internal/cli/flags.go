package cli

import (
	"strings"

	"github.com/alexanderramin/promocal/internal/domain"
	"github.com/spf13/pflag"
)

// quarterValue is a pflag.Value accepting All or Q1..Q4 in any case.
type quarterValue struct {
	sel *domain.QuarterSelector
}

var _ pflag.Value = quarterValue{}

func newQuarterValue(p *domain.QuarterSelector) quarterValue {
	*p = domain.AllQuarters
	return quarterValue{sel: p}
}

func (v quarterValue) String() string {
	if v.sel == nil {
		return string(domain.AllQuarters)
	}
	return string(*v.sel)
}

func (v quarterValue) Set(s string) error {
	sel, err := domain.ParseQuarterSelector(s)
	if err != nil {
		return err
	}
	*v.sel = sel
	return nil
}

func (v quarterValue) Type() string { return "quarter" }

// quarterFlag registers --quarter on fs.
func quarterFlag(fs *pflag.FlagSet, p *domain.QuarterSelector) {
	names := make([]string, len(domain.QuarterSelectors))
	for i, s := range domain.QuarterSelectors {
		names[i] = string(s)
	}
	fs.Var(newQuarterValue(p), "quarter", "Quarter filter: "+strings.Join(names, ", "))
}
