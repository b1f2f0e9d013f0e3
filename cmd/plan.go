package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/kurera-app/kurera/internal/progression"
	"github.com/kurera-app/kurera/internal/workout"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show or regenerate the active exercise plan",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().Bool("regenerate", false, "Replace the locked plan with a freshly generated one")
}

func runPlan(cmd *cobra.Command, args []string) error {
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
		return fmt.Errorf("no program found: run `kurera assess` first")
	}

	progress, err := st.LoadProgress()
	if err != nil {
		return err
	}
	if progress == nil {
		progress = progression.NewProgress(program.Level)
	}

	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	if regen, _ := cmd.Flags().GetBool("regenerate"); regen {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		progress.PlanIDs = workout.GenerateLevelPlan(cat, program.Level, program.Joint, rng)
		if err := st.SaveProgress(progress); err != nil {
			return err
		}
		fmt.Println(successStyle.Render("Plan regenerated."))
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Level %d plan", program.Level)))
	if len(progress.PlanIDs) == 0 {
		fmt.Println(dimStyle.Render("(empty)"))
		return nil
	}
	for i, id := range progress.PlanIDs {
		name := id
		if ex, ok := cat.Get(id); ok {
			name = ex.Name
		}
		phase := ""
		if e, ok := progress.Entries[id]; ok {
			phase = dimStyle.Render(fmt.Sprintf("  (step %d/%d)", e.PhaseIndex+1, progression.MaxPhaseIndex+1))
		}
		fmt.Printf("  %d. %s%s\n", i+1, name, phase)
	}
	return nil
}
