package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kurera-app/kurera/internal/progression"
	"github.com/kurera-app/kurera/internal/store"
	"github.com/kurera-app/kurera/internal/workout"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Log how a session felt and update your progression",
	RunE:  runFeedback,
}

func init() {
	feedbackCmd.Flags().String("exertion", "", "How the session felt: light, perfect, or heavy")
	feedbackCmd.Flags().Int("pain", -1, "Pain during the session, 0-10")
	feedbackCmd.Flags().StringSlice("completed", nil, "Completed exercise IDs (default: the whole active plan)")
	feedbackCmd.Flags().String("type", string(workout.TypeRehab), "Session type: rehab or circulation")
	feedbackCmd.MarkFlagRequired("exertion")
	feedbackCmd.MarkFlagRequired("pain")
}

func runFeedback(cmd *cobra.Command, args []string) error {
	exertionFlag, _ := cmd.Flags().GetString("exertion")
	exertion, err := progression.ParseExertion(exertionFlag)
	if err != nil {
		return err
	}

	pain, _ := cmd.Flags().GetInt("pain")
	if pain < 0 || pain > 10 {
		return fmt.Errorf("pain score %d out of range 0-10", pain)
	}

	typFlag, _ := cmd.Flags().GetString("type")
	typ, err := workout.ParseSessionType(typFlag)
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	progress, err := st.LoadProgress()
	if err != nil {
		return err
	}
	if progress == nil {
		return fmt.Errorf("no progression state found: run `kurera assess` first")
	}

	completed, _ := cmd.Flags().GetStringSlice("completed")
	if len(completed) == 0 {
		completed = progress.PlanIDs
	}

	result := progression.ApplyFeedback(progress, completed, exertion, pain)

	if err := st.SaveProgress(progress); err != nil {
		return err
	}

	event := store.SessionEvent{
		SessionID:   uuid.NewString(),
		SessionType: string(typ),
		Exertion:    string(exertion),
		PainScore:   pain,
		XPEarned:    result.XPEarned,
		Upgrades:    len(result.UpgradedExercises),
		LevelMaxed:  result.LevelMaxedOut,
		Message:     result.Message,
	}
	if err := st.AppendSessionEvent(event); err != nil {
		return err
	}

	fmt.Printf("%s %d XP  %s\n",
		successStyle.Render(fmt.Sprintf("+%d", result.XPEarned)),
		progress.State.ExperiencePoints, dimStyle.Render(fmt.Sprintf("(goal %d)", progression.LevelXPCap)))
	for _, id := range result.UpgradedExercises {
		fmt.Printf("%s %s moved up a step\n", labelStyle.Render("Upgrade:"), id)
	}
	fmt.Println(result.Message)

	if result.LevelMaxedOut {
		fmt.Println()
		fmt.Println(titleStyle.Render("Boss fight unlocked!"))
		fmt.Println(dimStyle.Render("Run `kurera levelup` when you're ready to advance."))
	}
	return nil
}
