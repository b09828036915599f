package planner

import (
	"fmt"
	"math"
	"time"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/model"
)

// weeksPerMonth 月视图每页固定 4 周
const weeksPerMonth = 4

// MonthGroup 月视图分组
type MonthGroup struct {
	Label string            `json:"label"`
	Weeks [][]model.Session `json:"weeks"`
}

// Commitment 时间投入估算
type Commitment struct {
	WeeklyHours  float64   `json:"weekly_hours"`
	WeeksNeeded  int       `json:"weeks_needed"`
	MonthsNeeded float64   `json:"months_needed"`
	EndDate      time.Time `json:"end_date"`
}

// GroupByWeek 按学习周分组：第 i 周 = sessions[i*d : (i+1)*d]
// 按 Session 序号而非日历周切分，与 TotalWeeks 的口径一致
func GroupByWeek(schedule *model.Schedule) [][]model.Session {
	d := schedule.Cadence.DaysPerWeek
	if d <= 0 || len(schedule.Sessions) == 0 {
		return [][]model.Session{}
	}
	weeks := make([][]model.Session, 0, ceilDiv(len(schedule.Sessions), d))
	for i := 0; i < len(schedule.Sessions); i += d {
		end := i + d
		if end > len(schedule.Sessions) {
			end = len(schedule.Sessions)
		}
		weeks = append(weeks, schedule.Sessions[i:end])
	}
	return weeks
}

// GroupByMonth 每 4 周合为一个月分组
func GroupByMonth(weeks [][]model.Session) []MonthGroup {
	groups := make([]MonthGroup, 0, ceilDiv(len(weeks), weeksPerMonth))
	for i := 0; i < len(weeks); i += weeksPerMonth {
		end := i + weeksPerMonth
		if end > len(weeks) {
			end = len(weeks)
		}
		groups = append(groups, MonthGroup{
			Label: fmt.Sprintf("Month %d", i/weeksPerMonth+1),
			Weeks: weeks[i:end],
		})
	}
	return groups
}

// EstimateCommitment 粗略估算完成总学时所需的周数与月数
// 与排课结果不同，这里按周总学时摊算，不考虑模块独占学习日
func EstimateCommitment(totalHours, hoursPerDay float64, daysPerWeek int, start time.Time) (*Commitment, error) {
	if err := ValidateCadence(hoursPerDay, daysPerWeek); err != nil {
		return nil, err
	}
	if totalHours < 0 || math.IsNaN(totalHours) || math.IsInf(totalHours, 0) {
		return nil, fmt.Errorf("总学时 %v 无效", totalHours)
	}

	weekly := hoursPerDay * float64(daysPerWeek)
	weeks := int(math.Ceil(roundHours(totalHours / weekly)))
	months := math.Round(float64(weeks)/4.33*10) / 10

	return &Commitment{
		WeeklyHours:  weekly,
		WeeksNeeded:  weeks,
		MonthsNeeded: months,
		EndDate:      dateOf(start).AddDate(0, 0, weeks*7),
	}, nil
}
