package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/kurera-app/kurera/internal/progression"
	"github.com/kurera-app/kurera/internal/workout"
)

var levelupCmd = &cobra.Command{
	Use:   "levelup",
	Short: "Advance to the next treatment level after a won boss fight",
	RunE:  runLevelup,
}

func runLevelup(cmd *cobra.Command, args []string) error {
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
		return fmt.Errorf("no progression state found: run `kurera assess` first")
	}

	next, err := progression.LevelUp(program, progress)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	progress.PlanIDs = workout.GenerateLevelPlan(cat, next.Level, next.Joint, rng)

	if err := st.SaveProfile(next, time.Now()); err != nil {
		return err
	}
	if err := st.SaveProgress(progress); err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Welcome to level %d!", next.Level)))
	fmt.Printf("%s %d rehab + %d circulation sessions per week\n",
		labelStyle.Render("Weekly dose:"), next.RehabDaysPerWeek, next.CirculationDaysPerWeek)
	fmt.Println(dimStyle.Render("A fresh plan has been generated. XP starts over at 0."))
	return nil
}
