package cmd

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/kurera-app/kurera/internal/assessment"
	"github.com/kurera-app/kurera/internal/catalog"
	"github.com/kurera-app/kurera/internal/progression"
	"github.com/kurera-app/kurera/internal/store"
	"github.com/kurera-app/kurera/internal/ui/funnel"
	"github.com/kurera-app/kurera/internal/workout"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run the triage assessment and start a program",
	RunE:  runAssess,
}

func init() {
	assessCmd.Flags().String("joint", "", "Joint to assess: knee, hip, or shoulder")
	assessCmd.MarkFlagRequired("joint")
}

func runAssess(cmd *cobra.Command, args []string) error {
	jointFlag, _ := cmd.Flags().GetString("joint")
	joint, err := catalog.ParseJoint(jointFlag)
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	model, err := funnel.New(joint)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("run assessment: %w", err)
	}
	m := final.(funnel.Model)
	if m.Err() != nil {
		return m.Err()
	}
	if m.Aborted() {
		fmt.Println(dimStyle.Render("Assessment cancelled. No program has been created."))
		return nil
	}

	state := m.State()
	switch state.Kind {
	case assessment.StateHardStop:
		fmt.Println(warnStyle.Render("Please see a doctor before starting."))
		fmt.Println("Your answers point to something that should be looked at by a")
		fmt.Println("medical professional first. No program has been created.")
		return nil

	case assessment.StateComplete:
		return finishAssessment(st, cat, state.Program)
	}
	return nil
}

func finishAssessment(st *store.Store, cat *catalog.Catalog, program *assessment.Program) error {
	progress := progression.NewProgress(program.Level)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	progress.PlanIDs = workout.GenerateLevelPlan(cat, program.Level, program.Joint, rng)

	if err := st.SaveProfile(program, time.Now()); err != nil {
		return err
	}
	if err := st.SaveProgress(progress); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(successStyle.Render(fmt.Sprintf("You're starting at level %d.", program.Level)))
	fmt.Printf("%s %d rehab + %d circulation sessions per week\n",
		labelStyle.Render("Weekly dose:"), program.RehabDaysPerWeek, program.CirculationDaysPerWeek)
	fmt.Printf("%s %s\n", labelStyle.Render("Focus:"), strings.Join(program.FocusAreas, ", "))
	fmt.Printf("%s %s\n", labelStyle.Render("Activity:"), program.ActivityPrescription)
	fmt.Println()
	fmt.Println(dimStyle.Render("Run `kurera session` to see your first workout."))
	return nil
}
