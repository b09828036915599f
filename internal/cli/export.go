package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(opts *options) *cobra.Command {
	var (
		format  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "导出 ics / csv / md / xlsx 文件",
		Long: `导出学习计划。--out 缺省时写入当前目录，文件名由技能名生成（如 go-rust-schedule.ics）；
--out - 写到标准输出。`,
		Args: cobra.NoArgs,
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

			_, exportSvc, err := opts.services(logger)
			if err != nil {
				return err
			}
			artifact, err := exportSvc.Export(cmd.Context(), format, plan, opts.cadence())
			if err != nil {
				return err
			}

			if outPath == "-" {
				_, err := cmd.OutOrStdout().Write(artifact.Body)
				return err
			}
			if outPath == "" {
				outPath = artifact.Filename
			}
			if err := os.WriteFile(outPath, artifact.Body, 0o644); err != nil {
				return fmt.Errorf("写入导出文件失败: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "已导出 %s（%d 字节）\n", outPath, len(artifact.Body))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "导出格式：ics | csv | md | xlsx")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "输出路径，- 表示标准输出")
	_ = cmd.MarkFlagRequired("format")
	return cmd
}
