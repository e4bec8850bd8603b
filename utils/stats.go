package utils

import (
	"sort"
	"strings"

	"github.com/ayelder/ff-av/models"
)

type PositionCount struct {
	Position string
	Count    int
}

type SummaryStats struct {
	TotalPlayers          int
	AverageProjectedValue float64
	MinimumProjectedValue float64
	MaximumProjectedValue float64
	MostValuablePlayer    models.PlayerValue
	PlayersPerPosition    []PositionCount
	TopAverageCost        []models.PlayerValue
}

func BuildSummaryStats(players []models.PlayerValue) SummaryStats {
	stats := SummaryStats{TotalPlayers: len(players)}
	if len(players) == 0 {
		return stats
	}

	positionCounts := make(map[string]int)
	minValue := players[0].ProjectedValue
	maxValue := players[0].ProjectedValue
	mostValuable := players[0]
	var totalValue float64

	for _, p := range players {
		position := strings.TrimSpace(p.Position)
		if position == "" {
			position = "Unknown"
		}
		positionCounts[position]++

		totalValue += p.ProjectedValue
		if p.ProjectedValue < minValue {
			minValue = p.ProjectedValue
		}
		if p.ProjectedValue > maxValue {
			maxValue = p.ProjectedValue
			mostValuable = p
		}
	}

	stats.AverageProjectedValue = totalValue / float64(len(players))
	stats.MinimumProjectedValue = minValue
	stats.MaximumProjectedValue = maxValue
	stats.MostValuablePlayer = mostValuable

	perPosition := make([]PositionCount, 0, len(positionCounts))
	for position, count := range positionCounts {
		perPosition = append(perPosition, PositionCount{Position: position, Count: count})
	}
	sort.Slice(perPosition, func(i, j int) bool {
		if perPosition[i].Count == perPosition[j].Count {
			return perPosition[i].Position < perPosition[j].Position
		}
		return perPosition[i].Count > perPosition[j].Count
	})
	stats.PlayersPerPosition = perPosition

	topCost := make([]models.PlayerValue, len(players))
	copy(topCost, players)
	sort.Slice(topCost, func(i, j int) bool {
		if topCost[i].AverageCost == topCost[j].AverageCost {
			return topCost[i].ProjectedValue > topCost[j].ProjectedValue
		}
		return topCost[i].AverageCost > topCost[j].AverageCost
	})
	if len(topCost) > 5 {
		topCost = topCost[:5]
	}
	stats.TopAverageCost = topCost

	return stats
}
