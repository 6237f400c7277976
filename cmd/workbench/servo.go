// Servo catalog commands: add, get, list, delete.
package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-robotics/robocad/pkg/types"
)

var servoAddSpec string

var servoCmd = &cobra.Command{
	Use:   "servo",
	Short: "Manage servo specs in the catalog",
}

var servoAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a servo spec",
	Long: `Add stores a new servo spec under the given name. Dimensions start
from the sg90 preset; --spec overlays JSON overrides.

Example:
  workbench servo add mg90s
  workbench servo add mg996r --spec '{"body_width": 20.0, "body_length": 40.7}'`,
	Args: cobra.ExactArgs(1),
	RunE: runServoAdd,
}

var servoGetCmd = &cobra.Command{
	Use:   "get <id-or-name>",
	Short: "Retrieve a servo spec",
	Args:  cobra.ExactArgs(1),
	RunE:  runServoGet,
}

var servoListCmd = &cobra.Command{
	Use:   "list [filter...]",
	Short: "List servo specs with optional filter",
	Long: `List fetches servo specs. Filters are key=value pairs on name or any
dimension field; multiple filters are ANDed together.

Example:
  workbench servo list
  workbench servo list body_width=12.2
  workbench servo list --json`,
	RunE: runServoList,
}

var servoDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a servo spec by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runServoDelete,
}

func init() {
	servoAddCmd.Flags().StringVar(&servoAddSpec, "spec", "", "JSON dimension overrides")

	servoCmd.AddCommand(servoAddCmd)
	servoCmd.AddCommand(servoGetCmd)
	servoCmd.AddCommand(servoListCmd)
	servoCmd.AddCommand(servoDeleteCmd)
}

func runServoAdd(cmd *cobra.Command, args []string) error {
	catalog, err := attachBackend()
	if err != nil {
		return err
	}
	defer catalog.Detach()

	table, err := catalog.GetTable(types.TableServos)
	if err != nil {
		return fmt.Errorf("get servos table: %w", err)
	}

	servo := types.SG90()
	if servoAddSpec != "" {
		if err := json.Unmarshal([]byte(servoAddSpec), &servo); err != nil {
			return fmt.Errorf("parse spec: %w", err)
		}
	}
	servo.Name = args[0]

	id, err := table.Set("", &servo)
	if err != nil {
		return fmt.Errorf("add servo: %w", err)
	}

	if flagJSON {
		return printJSON(&servo)
	}
	fmt.Printf("Added servo %s: %s\n", servo.Name, id)
	return nil
}

func runServoGet(cmd *cobra.Command, args []string) error {
	catalog, err := attachBackend()
	if err != nil {
		return err
	}
	defer catalog.Detach()

	table, err := catalog.GetTable(types.TableServos)
	if err != nil {
		return fmt.Errorf("get servos table: %w", err)
	}

	entity, err := resolveEntity(table, args[0])
	if err != nil {
		return fmt.Errorf("get servo: %w", err)
	}
	servo := entity.(*types.Servo)

	if flagJSON {
		return printJSON(servo)
	}
	printServoDetails(servo)
	return nil
}

func runServoList(cmd *cobra.Command, args []string) error {
	catalog, err := attachBackend()
	if err != nil {
		return err
	}
	defer catalog.Detach()

	table, err := catalog.GetTable(types.TableServos)
	if err != nil {
		return fmt.Errorf("get servos table: %w", err)
	}

	filter, err := parseFilterArgs(args)
	if err != nil {
		return err
	}

	entities, err := table.Fetch(filter)
	if err != nil {
		return fmt.Errorf("fetch servos: %w", err)
	}

	servos := make([]*types.Servo, len(entities))
	for i, entity := range entities {
		servos[i] = entity.(*types.Servo)
	}

	if flagJSON {
		return printJSON(servos)
	}
	printServoTable(servos)
	return nil
}

func runServoDelete(cmd *cobra.Command, args []string) error {
	catalog, err := attachBackend()
	if err != nil {
		return err
	}
	defer catalog.Detach()

	table, err := catalog.GetTable(types.TableServos)
	if err != nil {
		return fmt.Errorf("get servos table: %w", err)
	}

	id := args[0]
	if err := table.Delete(id); err != nil {
		return fmt.Errorf("delete servo %q: %w", id, err)
	}

	if flagJSON {
		return printJSON(map[string]string{"deleted": id, "status": "success"})
	}
	fmt.Printf("Deleted servo: %s\n", id)
	return nil
}

// printServoDetails prints servo fields in human-readable form.
func printServoDetails(s *types.Servo) {
	fmt.Printf("ID:               %s\n", s.ServoID)
	fmt.Printf("Name:             %s\n", s.Name)
	fmt.Printf("Body (WxLxH):     %.1f x %.1f x %.1f mm\n", s.BodyWidth, s.BodyLength, s.BodyHeight)
	fmt.Printf("Flange thickness: %.1f mm\n", s.FlangeThickness)
	fmt.Printf("Flange overhang:  %.1f mm\n", s.FlangeOverhang)
	fmt.Printf("Screw spacing:    %.1f mm\n", s.ScrewSpacingX)
	fmt.Printf("Screw diameter:   %.1f mm\n", s.ScrewDiameter)
	fmt.Printf("Created:          %s\n", s.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated:          %s\n", s.UpdatedAt.Format("2006-01-02 15:04:05"))
}

// printServoTable prints servos in a human-readable table.
func printServoTable(servos []*types.Servo) {
	if len(servos) == 0 {
		fmt.Println("No servos found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tBODY (WxLxH)\tSCREWS")
	fmt.Fprintln(w, "--\t----\t------------\t------")
	for _, s := range servos {
		shortID := s.ServoID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		fmt.Fprintf(w, "%s\t%s\t%.1fx%.1fx%.1f\t%.1f @ %.1f\n",
			shortID, s.Name,
			s.BodyWidth, s.BodyLength, s.BodyHeight,
			s.ScrewDiameter, s.ScrewSpacingX)
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("Total: %d servo(s)\n", len(servos))
}
