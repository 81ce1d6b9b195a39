package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/sections"
	"github.com/jonathan/resume-builder/internal/types"
)

var sectionsResumePath string

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Inspect and edit the section layout of a resume document",
}

var sectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the section layout in render order",
	RunE: func(_ *cobra.Command, _ []string) error {
		doc, err := loadResumeDocument(sectionsResumePath)
		if err != nil {
			return err
		}
		observability.NewPrinter(os.Stdout).PrintSectionLayout(sections.GetAllSections(doc))
		return nil
	},
}

var sectionsAddType string

var sectionsAddCmd = &cobra.Command{
	Use:   "add <display-name>",
	Short: "Add a custom section",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		switch types.SectionType(sectionsAddType) {
		case types.SectionTypeText, types.SectionTypeItemList, types.SectionTypeStringList:
		default:
			return fmt.Errorf("invalid section type %q: must be text, itemList or stringList", sectionsAddType)
		}
		return editSections(func(doc *types.ResumeDocument) error {
			meta := sections.AddCustomSection(doc, args[0], types.SectionType(sectionsAddType))
			fmt.Printf("Added section %s (%s)\n", meta.DisplayName, meta.ID)
			return nil
		})
	},
}

var sectionsRemoveCmd = &cobra.Command{
	Use:   "remove <section-id>",
	Short: "Remove a section (default sections are hidden instead)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return editSections(func(doc *types.ResumeDocument) error {
			sections.DeleteSection(doc, args[0])
			return nil
		})
	},
}

var sectionsMoveOver string

var sectionsMoveCmd = &cobra.Command{
	Use:   "move <section-id> <up|down>",
	Short: "Move a section one step, or drop it onto another with --over",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(_ *cobra.Command, args []string) error {
		return editSections(func(doc *types.ResumeDocument) error {
			metas := sections.GetSectionMeta(doc)
			switch {
			case sectionsMoveOver != "":
				metas = sections.Reorder(metas, args[0], sectionsMoveOver)
			case len(args) == 2 && args[1] == "up":
				metas = sections.MoveUp(metas, args[0])
			case len(args) == 2 && args[1] == "down":
				metas = sections.MoveDown(metas, args[0])
			default:
				return fmt.Errorf("specify a direction (up or down) or --over")
			}
			doc.SectionMeta = metas
			return nil
		})
	},
}

var sectionsToggleCmd = &cobra.Command{
	Use:   "toggle <section-id>",
	Short: "Toggle a section's visibility",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return editSections(func(doc *types.ResumeDocument) error {
			doc.SectionMeta = sections.ToggleVisibility(sections.GetSectionMeta(doc), args[0])
			return nil
		})
	},
}

var sectionsRenameCmd = &cobra.Command{
	Use:   "rename <section-id> <new-name>",
	Short: "Rename a section",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return editSections(func(doc *types.ResumeDocument) error {
			doc.SectionMeta = sections.Rename(sections.GetSectionMeta(doc), args[0], args[1])
			return nil
		})
	},
}

func init() {
	sectionsCmd.PersistentFlags().StringVarP(&sectionsResumePath, "resume", "r", "", "Path to resume document JSON (required)")
	sectionsCmd.MarkPersistentFlagRequired("resume")

	sectionsAddCmd.Flags().StringVar(&sectionsAddType, "type", string(types.SectionTypeText), "Section type: text, itemList or stringList")
	sectionsMoveCmd.Flags().StringVar(&sectionsMoveOver, "over", "", "Id of the section to drop onto")

	sectionsCmd.AddCommand(sectionsListCmd, sectionsAddCmd, sectionsRemoveCmd, sectionsMoveCmd, sectionsToggleCmd, sectionsRenameCmd)
	rootCmd.AddCommand(sectionsCmd)
}

// editSections loads the resume, applies the edit, and writes the document
// back to the same file.
func editSections(edit func(*types.ResumeDocument) error) error {
	doc, err := loadResumeDocument(sectionsResumePath)
	if err != nil {
		return err
	}
	if err := edit(doc); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode resume: %w", err)
	}
	if err := os.WriteFile(sectionsResumePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write resume: %w", err)
	}
	return nil
}
