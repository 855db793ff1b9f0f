package term

import (
	"os"

	"github.com/fatih/color"
	"github.com/plandex-ai/survey/v2"
)

func SelectFromList(msg string, options []string) (string, error) {
	var selected string
	prompt := &survey.Select{
		Message:       color.New(ColorHiMagenta, color.Bold).Sprint(msg),
		Options:       options,
		FilterMessage: "",
	}
	err := survey.AskOne(prompt, &selected)
	if err != nil {
		if err.Error() == "interrupt" {
			os.Exit(0)
		}

		return "", err
	}

	return selected, nil
}

func MultiSelectFromList(msg string, options []string) ([]string, error) {
	var selected []string
	prompt := &survey.MultiSelect{
		Message:       color.New(ColorHiMagenta, color.Bold).Sprint(msg),
		Options:       options,
		FilterMessage: "",
	}
	err := survey.AskOne(prompt, &selected)
	if err != nil {
		if err.Error() == "interrupt" {
			os.Exit(0)
		}

		return nil, err
	}

	return selected, nil
}

func SelectFromListWithSkip(msg, skipLabel string, options []string) (string, bool, error) {
	withSkip := append([]string{skipLabel}, options...)

	selected, err := SelectFromList(msg, withSkip)
	if err != nil {
		return "", false, err
	}

	if selected == skipLabel {
		return "", true, nil
	}

	return selected, false, nil
}
