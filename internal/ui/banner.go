package ui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salaryforecast/internal/models"
	"github.com/fr4nk3nst1ner/salaryforecast/internal/projection"
	"github.com/fr4nk3nst1ner/salaryforecast/internal/utils"
)

const bannerText = `
 ___      _                  ___                       _
/ __| ___| |__ _ _ _ _  _   | __|__ _ _ ___ __ __ _ __| |_
\__ \/ _' | / _' | '_| || |  | _/ _ \ '_/ -_) _/ _' (_-<  _|
|___/\__,_|_\__,_|_|  \_, |  |_|\___/_| \___\__\__,_/__/\__|
                      |__/
 @fr4nk3nst1ner
`

// ColorizeText applies a random color gradient to the input text
func ColorizeText(text string) string {
	source := rand.NewSource(time.Now().UnixNano())
	random := rand.New(source)

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	firstPoint := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	strs := strings.Split(text, "")
	if len(strs) < 2 {
		return text
	}

	var coloredText strings.Builder
	for i, s := range strs {
		coloredText.WriteString(startColor.Fade(0, float32(len(strs)), float32(i%(len(strs)/2)), firstPoint).Sprint(s))
	}

	return coloredText.String()
}

// PrintBanner displays the application banner
func PrintBanner(silence bool) {
	if !silence {
		fmt.Println(ColorizeText(bannerText))
	}
}

// ColorizeSalary applies color formatting to a projected amount
func ColorizeSalary(amount float64) string {
	formatted := utils.FormatSalary(amount)

	switch {
	case amount >= 400000:
		return pterm.Green(formatted)
	case amount >= 300000:
		return pterm.LightGreen(formatted)
	case amount >= 100000:
		return pterm.Yellow(formatted)
	default:
		// NaN lands here too
		return pterm.Red(formatted)
	}
}

// RenderProjections renders the projection results as a table
func RenderProjections(results []models.ProjectionResult) (string, error) {
	data := pterm.TableData{{"Role", "Entry-Level 2025", "Mid-Level 2025", "Senior-Level 2025"}}
	for _, result := range results {
		data = append(data, []string{
			result.Role,
			ColorizeSalary(result.Entry2025),
			ColorizeSalary(result.Mid2025),
			ColorizeSalary(result.Senior2025),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
}

// DescribeSettings summarises the static inputs of a projection run
func DescribeSettings(settings projection.Settings) string {
	return fmt.Sprintf("Inflation %s, skills premium %s (%d skills), growth periods %d",
		utils.FormatPercent(settings.InflationRate),
		utils.FormatPercent(settings.Skills.Total()),
		len(settings.Skills),
		settings.Periods)
}

// PrintProjections displays the projection results
func PrintProjections(settings projection.Settings, results []models.ProjectionResult) error {
	pterm.DefaultSection.Println("Predicted Salaries for 2025")
	pterm.Info.Println(DescribeSettings(settings))

	table, err := RenderProjections(results)
	if err != nil {
		return fmt.Errorf("rendering projections: %w", err)
	}
	fmt.Println(table)
	return nil
}
