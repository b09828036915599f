package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/dto"
)

func newScheduleCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "打印排课结果",
		Long:  `按学习节奏为计划排课，逐行打印学习日，并给出结束日期与时间投入估算。`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := loadPlan(opts.planPath)
			if err != nil {
				return err
			}
			logger, err := opts.logger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			scheduleSvc, _, err := opts.services(logger)
			if err != nil {
				return err
			}
			preview, err := scheduleSvc.Preview(cmd.Context(), &dto.SchedulePreviewRequest{
				Topics:         plan.Topics,
				CadenceRequest: opts.cadence(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(preview)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tDAY\tMODULE\tTOPIC\tHOURS\tPHASE")
			for _, s := range preview.Sessions {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%g\t%s\n",
					s.Date, s.Day, s.TopicIndex+1, s.TopicTitle, s.Hours, s.Phase)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			c := preview.Commitment
			fmt.Fprintf(out, "\n%s: %d 个学习日，%d 周，%s → %s\n",
				plan.SkillName, len(preview.Sessions), preview.TotalWeeks, preview.StartDate, preview.EndDate)
			fmt.Fprintf(out, "共 %g 小时，每周 %g 小时，约 %g 个月\n", c.TotalHours, c.WeeklyHours, c.MonthsNeeded)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "以 JSON 输出完整预览（含周 / 月分组）")
	return cmd
}
