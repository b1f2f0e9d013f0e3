package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kurera-app/kurera/internal/catalog"
	"github.com/kurera-app/kurera/internal/progression"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress and session history",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	program, err := st.LoadProfile()
	if err != nil {
		return err
	}
	if program == nil {
		fmt.Println(dimStyle.Render("No program yet. Run `kurera assess` to get started."))
		return nil
	}

	progress, err := st.LoadProgress()
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s — level %d", catalog.DisplayName(program.Joint), program.Level)))
	if progress != nil {
		fmt.Printf("%s %d / %d\n", labelStyle.Render("XP:"), progress.State.ExperiencePoints, progression.LevelXPCap)
		if progress.State.LevelMaxedOut {
			fmt.Println(successStyle.Render("Boss fight unlocked!"))
		}
		if progress.State.ConsecutivePerfectSessions > 1 {
			fmt.Printf("%s %d perfect sessions in a row\n",
				labelStyle.Render("Streak:"), progress.State.ConsecutivePerfectSessions)
		}
	}

	stats, err := st.Stats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("%s %d total (%d rehab, %d circulation)\n", labelStyle.Render("Sessions:"),
		stats.TotalSessions, stats.ByType["rehab"], stats.ByType["circulation"])
	fmt.Printf("%s %d\n", labelStyle.Render("Exercise upgrades:"), stats.TotalUpgrades)
	if stats.TotalSessions > 0 {
		fmt.Printf("%s %.1f / 10\n", labelStyle.Render("Average pain:"), stats.AvgPain)
	}

	events, err := st.RecentEvents(5)
	if err != nil {
		return err
	}
	if len(events) > 0 {
		fmt.Println()
		fmt.Println(labelStyle.Render("Recent sessions:"))
		for _, e := range events {
			fmt.Printf("  %s  %s, pain %d, +%d XP\n",
				dimStyle.Render(e.CreatedAt.Format("2006-01-02")), e.Exertion, e.PainScore, e.XPEarned)
		}
	}
	return nil
}
