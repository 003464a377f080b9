// Package goal manages savings and debt goals
package goal

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/accountbook/cmd/common"
	"fjacquet/accountbook/cmd/root"
	"fjacquet/accountbook/internal/currencyutils"
	"fjacquet/accountbook/internal/dateutils"
	"fjacquet/accountbook/internal/models"

	"github.com/spf13/cobra"
)

var (
	title    string
	target   string
	current  string
	deadline string
	goalType string
	color    string
)

// Cmd represents the goal command
var Cmd = &cobra.Command{
	Use:   "goal",
	Short: "Track savings and debt goals",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a goal",
	Args:  cobra.NoArgs,
	RunE:  addFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals with their progress",
	Args:  cobra.NoArgs,
	RunE:  listFunc,
}

var progressCmd = &cobra.Command{
	Use:   "progress <id> <amount>",
	Short: "Set the current amount of a goal",
	Args:  cobra.ExactArgs(2),
	RunE:  progressFunc,
}

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE:  removeFunc,
}

func init() {
	addCmd.Flags().StringVarP(&title, "title", "t", "", "Goal title")
	addCmd.Flags().StringVarP(&target, "target", "a", "", "Target amount in KRW")
	addCmd.Flags().StringVarP(&current, "current", "c", "", "Amount already saved or repaid")
	addCmd.Flags().StringVarP(&deadline, "deadline", "d", "", "Deadline date")
	addCmd.Flags().StringVar(&goalType, "type", "savings", "Goal type (savings or debt)")
	addCmd.Flags().StringVar(&color, "color", "", "Display color")
	_ = addCmd.MarkFlagRequired("title")
	_ = addCmd.MarkFlagRequired("target")

	Cmd.AddCommand(addCmd, listCmd, progressCmd, removeCmd)
}

func addFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	targetAmount, err := common.ParseAmountArg(target)
	if err != nil {
		return err
	}
	currentAmount, err := currencyutils.ParseAmount(current)
	if err != nil {
		return err
	}
	gt, err := models.ParseGoalType(goalType)
	if err != nil {
		return err
	}
	var due time.Time
	if strings.TrimSpace(deadline) != "" {
		due, err = dateutils.ParseDate(deadline, c.Now().Location())
		if err != nil {
			return err
		}
	}

	g, err := c.GetGoals().Add(models.Goal{
		Title:         title,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Deadline:      due,
		Type:          gt,
		Color:         color,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added goal %s\n", g.ID)
	printGoal(cmd, g, c.Now())
	return nil
}

func listFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	goals := c.GetGoals().Goals()
	if len(goals) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No goals yet.")
		return nil
	}
	for _, g := range goals {
		printGoal(cmd, g, c.Now())
	}
	return nil
}

func progressFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	amount, err := common.ParseAmountArg(args[1])
	if err != nil {
		return err
	}
	g, err := c.GetGoals().UpdateProgress(resolveID(c.GetGoals().Goals(), args[0]), amount)
	if err != nil {
		return err
	}
	printGoal(cmd, g, c.Now())
	return nil
}

func removeFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	id := resolveID(c.GetGoals().Goals(), args[0])
	if err := c.GetGoals().Remove(id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed goal %s\n", id)
	return nil
}

// resolveID expands a unique short id; anything else is returned unchanged.
func resolveID(goals []models.Goal, prefix string) string {
	match := ""
	for _, g := range goals {
		if g.ID == prefix {
			return prefix
		}
		if strings.HasPrefix(g.ID, prefix) {
			if match != "" {
				return prefix
			}
			match = g.ID
		}
	}
	if match == "" {
		return prefix
	}
	return match
}

func printGoal(cmd *cobra.Command, g models.Goal, now time.Time) {
	status := fmt.Sprintf("%s left", common.FormatCanonical(g.Remaining()))
	if g.IsCompleted() {
		status = "completed"
	}
	line := fmt.Sprintf("%s  %-7s %-20s %s / %s  %s  %s",
		common.ShortID(g.ID), g.Type, g.Title,
		common.FormatCanonical(g.CurrentAmount),
		common.FormatCanonical(g.TargetAmount),
		currencyutils.FormatPercent(g.Progress()*100),
		status)
	if !g.Deadline.IsZero() {
		line += fmt.Sprintf("  due %s (%d days)", dateutils.ToISODate(g.Deadline), g.DaysLeft(now))
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
}
