package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/core/reporting"
)

func newResolveCmd() *cobra.Command {
	var (
		selector  string
		from, to  string
		now       string
		fyMonth   int
		fyDay     int
		withPrior bool
	)
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Show the date range a period selector resolves to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := reporting.ParseSelector(selector)
			if err != nil {
				return err
			}
			at := time.Now().UTC()
			if now != "" {
				if at, err = time.Parse(time.DateOnly, now); err != nil {
					return fmt.Errorf("invalid --now date %q: use YYYY-MM-DD", now)
				}
			}
			var custom *domain.DateRange
			if sel == reporting.Custom {
				start, err := optionalDate("from", from)
				if err != nil {
					return err
				}
				end, err := optionalDate("to", to)
				if err != nil {
					return err
				}
				if start != nil && end != nil {
					r := domain.NewDateRange(*start, *end)
					custom = &r
				}
			}

			r, err := reporting.Resolve(sel, fyMonth, fyDay, custom, at)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s (%d days)\n", sel, periodLabel(r), r.Days())
			if withPrior {
				if prior, ok := reporting.PriorRange(sel, r, fyDay); ok {
					fmt.Fprintf(out, "prior: %s (%d days)\n", periodLabel(prior), prior.Days())
				} else {
					fmt.Fprintln(out, "prior: none")
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&selector, "selector", string(reporting.ThisYear), "Period selector")
	f.StringVar(&from, "from", "", "Custom range start (YYYY-MM-DD)")
	f.StringVar(&to, "to", "", "Custom range end (YYYY-MM-DD)")
	f.StringVar(&now, "now", "", "Reference date (YYYY-MM-DD); defaults to today")
	f.IntVar(&fyMonth, "fy-month", 1, "Fiscal year start month")
	f.IntVar(&fyDay, "fy-day", 1, "Fiscal year start day")
	f.BoolVar(&withPrior, "prior", false, "Also print the comparative prior range")
	return cmd
}
