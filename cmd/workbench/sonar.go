// Sonar catalog commands: add, get, list, delete.
package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-robotics/robocad/pkg/types"
)

var sonarAddSpec string

var sonarCmd = &cobra.Command{
	Use:   "sonar",
	Short: "Manage sonar board specs in the catalog",
}

var sonarAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a sonar board spec",
	Long: `Add stores a new sonar board spec under the given name. Dimensions
start from the hc-sr04 preset; --spec overlays JSON overrides.

Example:
  workbench sonar add rcwl-1601
  workbench sonar add jsn-sr04t --spec '{"board_width": 50.0, "board_height": 42.0}'`,
	Args: cobra.ExactArgs(1),
	RunE: runSonarAdd,
}

var sonarGetCmd = &cobra.Command{
	Use:   "get <id-or-name>",
	Short: "Retrieve a sonar board spec",
	Args:  cobra.ExactArgs(1),
	RunE:  runSonarGet,
}

var sonarListCmd = &cobra.Command{
	Use:   "list [filter...]",
	Short: "List sonar board specs with optional filter",
	Long: `List fetches sonar board specs. Filters are key=value pairs on name
or any dimension field; multiple filters are ANDed together.

Example:
  workbench sonar list
  workbench sonar list board_width=45
  workbench sonar list --json`,
	RunE: runSonarList,
}

var sonarDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a sonar board spec by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runSonarDelete,
}

func init() {
	sonarAddCmd.Flags().StringVar(&sonarAddSpec, "spec", "", "JSON dimension overrides")

	sonarCmd.AddCommand(sonarAddCmd)
	sonarCmd.AddCommand(sonarGetCmd)
	sonarCmd.AddCommand(sonarListCmd)
	sonarCmd.AddCommand(sonarDeleteCmd)
}

func runSonarAdd(cmd *cobra.Command, args []string) error {
	catalog, err := attachBackend()
	if err != nil {
		return err
	}
	defer catalog.Detach()

	table, err := catalog.GetTable(types.TableSonars)
	if err != nil {
		return fmt.Errorf("get sonars table: %w", err)
	}

	board := types.HCSR04()
	if sonarAddSpec != "" {
		if err := json.Unmarshal([]byte(sonarAddSpec), &board); err != nil {
			return fmt.Errorf("parse spec: %w", err)
		}
	}
	board.Name = args[0]

	id, err := table.Set("", &board)
	if err != nil {
		return fmt.Errorf("add sonar: %w", err)
	}

	if flagJSON {
		return printJSON(&board)
	}
	fmt.Printf("Added sonar %s: %s\n", board.Name, id)
	return nil
}

func runSonarGet(cmd *cobra.Command, args []string) error {
	catalog, err := attachBackend()
	if err != nil {
		return err
	}
	defer catalog.Detach()

	table, err := catalog.GetTable(types.TableSonars)
	if err != nil {
		return fmt.Errorf("get sonars table: %w", err)
	}

	entity, err := resolveEntity(table, args[0])
	if err != nil {
		return fmt.Errorf("get sonar: %w", err)
	}
	board := entity.(*types.SonarBoard)

	if flagJSON {
		return printJSON(board)
	}
	printSonarDetails(board)
	return nil
}

func runSonarList(cmd *cobra.Command, args []string) error {
	catalog, err := attachBackend()
	if err != nil {
		return err
	}
	defer catalog.Detach()

	table, err := catalog.GetTable(types.TableSonars)
	if err != nil {
		return fmt.Errorf("get sonars table: %w", err)
	}

	filter, err := parseFilterArgs(args)
	if err != nil {
		return err
	}

	entities, err := table.Fetch(filter)
	if err != nil {
		return fmt.Errorf("fetch sonars: %w", err)
	}

	boards := make([]*types.SonarBoard, len(entities))
	for i, entity := range entities {
		boards[i] = entity.(*types.SonarBoard)
	}

	if flagJSON {
		return printJSON(boards)
	}
	printSonarTable(boards)
	return nil
}

func runSonarDelete(cmd *cobra.Command, args []string) error {
	catalog, err := attachBackend()
	if err != nil {
		return err
	}
	defer catalog.Detach()

	table, err := catalog.GetTable(types.TableSonars)
	if err != nil {
		return fmt.Errorf("get sonars table: %w", err)
	}

	id := args[0]
	if err := table.Delete(id); err != nil {
		return fmt.Errorf("delete sonar %q: %w", id, err)
	}

	if flagJSON {
		return printJSON(map[string]string{"deleted": id, "status": "success"})
	}
	fmt.Printf("Deleted sonar: %s\n", id)
	return nil
}

// printSonarDetails prints sonar board fields in human-readable form.
func printSonarDetails(s *types.SonarBoard) {
	fmt.Printf("ID:                 %s\n", s.SonarID)
	fmt.Printf("Name:               %s\n", s.Name)
	fmt.Printf("Board (WxHxT):      %.1f x %.1f x %.1f mm\n", s.BoardWidth, s.BoardHeight, s.BoardThickness)
	fmt.Printf("Mount holes:        %.1f mm on %.1f x %.1f grid\n", s.MountHoleDiameter, s.MountHoleSpacingX, s.MountHoleSpacingY)
	fmt.Printf("Windows:            %.1f mm, %.1f mm apart\n", s.WindowDiameter, s.WindowSeparation)
	fmt.Printf("Created:            %s\n", s.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated:            %s\n", s.UpdatedAt.Format("2006-01-02 15:04:05"))
}

// printSonarTable prints sonar boards in a human-readable table.
func printSonarTable(boards []*types.SonarBoard) {
	if len(boards) == 0 {
		fmt.Println("No sonars found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tBOARD (WxHxT)\tWINDOWS")
	fmt.Fprintln(w, "--\t----\t-------------\t-------")
	for _, s := range boards {
		shortID := s.SonarID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		fmt.Fprintf(w, "%s\t%s\t%.1fx%.1fx%.1f\t%.1f @ %.1f\n",
			shortID, s.Name,
			s.BoardWidth, s.BoardHeight, s.BoardThickness,
			s.WindowDiameter, s.WindowSeparation)
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("Total: %d sonar(s)\n", len(boards))
}
