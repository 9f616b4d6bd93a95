package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/chatfmt/internal/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List builtin scoring profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfiles,
}

var profilesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print the YAML of a builtin profile",
	Long: `Print the YAML of a builtin profile. Save it to a file, edit it, and pass
it back with --profile-file to tune the classifier.

Examples:
  chatfmt profiles show default > mine.yaml
  chatfmt check --profile-file mine.yaml logs/`,
	Args: cobra.ExactArgs(1),
	RunE: runProfilesShow,
}

func init() {
	profilesCmd.AddCommand(profilesShowCmd)
	RootCmd.AddCommand(profilesCmd)
}

// profileInfo is the JSON form of a profile listing
type profileInfo struct {
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	LineThreshold    float64 `json:"lineThreshold"`
	MinCodeLineRatio float64 `json:"minCodeLineRatio"`
	MinScore         float64 `json:"minScore"`
	Active           bool    `json:"active"`
}

func runProfiles(cmd *cobra.Command, args []string) error {
	u := GetUI()
	active := getScorer().Profile().Name

	var infos []profileInfo
	for _, name := range profile.Available() {
		p, err := profile.Load(name)
		if err != nil {
			return err
		}
		infos = append(infos, profileInfo{
			Name:             p.Name,
			Description:      p.Description,
			LineThreshold:    p.LineThreshold,
			MinCodeLineRatio: p.MinCodeLineRatio,
			MinScore:         p.MinScore,
			Active:           p.Name == active,
		})
	}

	if u.IsJSON() {
		encoder := json.NewEncoder(u.Writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(infos)
	}

	s := u.Styles
	for _, info := range infos {
		marker := "  "
		if info.Active {
			marker = s.Success.Render("* ")
		}
		fmt.Fprintf(u.Writer, "%s%s\n", marker, s.Header.Render(info.Name))
		fmt.Fprintf(u.Writer, "    %s\n", info.Description)
		fmt.Fprintln(u.Writer, s.Subheader.Render(fmt.Sprintf("    line threshold %.2f, code line ratio %.2f, min score %.2f",
			info.LineThreshold, info.MinCodeLineRatio, info.MinScore)))
	}

	return nil
}

func runProfilesShow(cmd *cobra.Command, args []string) error {
	data, err := profile.Source(args[0])
	if err != nil {
		return err
	}

	_, err = GetUI().Writer.Write(data)
	return err
}
