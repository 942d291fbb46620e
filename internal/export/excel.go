// Package export renders generated content as spreadsheet downloads for
// teachers who work offline.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/learnwithai/backend/internal/content"
)

// QuizWorkbook builds an .xlsx with one row per question. The caller owns
// closing the file.
func QuizWorkbook(quiz *content.Quiz) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Quiz"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headers := []string{"#", "Type", "Question", "Option A", "Option B", "Option C", "Option D", "Correct Answer", "Explanation"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for row, q := range quiz.Questions {
		values := []any{row + 1, string(q.Type), q.Question}
		for i := 0; i < 4; i++ {
			if i < len(q.Options) {
				values = append(values, q.Options[i])
			} else {
				values = append(values, "")
			}
		}
		if q.CorrectAnswer.IsIndex {
			values = append(values, string(rune('A'+q.CorrectAnswer.Index)))
		} else {
			values = append(values, q.CorrectAnswer.Text)
		}
		values = append(values, q.Explanation)

		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("write question %d: %w", row+1, err)
			}
		}
	}

	return f, nil
}

// LessonPlanWorkbook builds an .xlsx with an overview sheet and one sheet
// per lecture. The caller owns closing the file.
func LessonPlanWorkbook(plan *content.LessonPlan) (*excelize.File, error) {
	f := excelize.NewFile()
	const overview = "Overview"
	if err := f.SetSheetName(f.GetSheetName(0), overview); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	overviewRows := [][2]any{
		{"Topic", plan.Topic},
		{"Subject", plan.Subject},
		{"Board", plan.Board},
		{"Class", plan.ClassLevel},
		{"Total Minutes", plan.TotalMinutes},
		{"Lectures", plan.TotalLectures},
		{"Teaching Pace", plan.TeachingPace},
		{"Homework", plan.Homework},
		{"Message to Parents", plan.ParentMessage},
	}
	for i, kv := range overviewRows {
		if err := f.SetCellValue(overview, fmt.Sprintf("A%d", i+1), kv[0]); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(overview, fmt.Sprintf("B%d", i+1), kv[1]); err != nil {
			return nil, err
		}
	}

	for _, lec := range plan.Lectures {
		sheet := fmt.Sprintf("Lecture %d", lec.LectureNumber)
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", sheet, err)
		}

		rows := [][2]any{
			{"Title", lec.Title},
			{"Duration (min)", lec.Duration},
			{"Topics", strings.Join(lec.Topics, ", ")},
			{"Complexity", lec.Complexity},
			{"Recap", lec.RecapContent},
			{"Today's Plan", lec.TeachPackCards.TodaysPlan},
			{"Start", lec.TeachPackCards.Start},
			{"Explain", lec.TeachPackCards.Explain},
			{"Do", lec.TeachPackCards.Do},
			{"Talk", lec.TeachPackCards.Talk},
			{"Check", lec.TeachPackCards.Check},
		}
		for i, kv := range rows {
			if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", i+1), kv[0]); err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", i+1), kv[1]); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
