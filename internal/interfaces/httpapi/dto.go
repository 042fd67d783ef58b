package httpapi

import (
	"github.com/riskibarqy/gudlft-booking/internal/domain/club"
	"github.com/riskibarqy/gudlft-booking/internal/domain/competition"
	"github.com/riskibarqy/gudlft-booking/internal/usecase"
)

type createBookingRequest struct {
	Club        string `json:"club" validate:"required,max=200"`
	Competition string `json:"competition" validate:"required,max=200"`
	Places      *int   `json:"places" validate:"required"`
}

type clubPointsDTO struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

type competitionDTO struct {
	Name           string `json:"name"`
	Date           string `json:"date"`
	NumberOfPlaces int    `json:"number_of_places"`
	IsPast         bool   `json:"is_past"`
}

type allowanceDTO struct {
	Club        string `json:"club"`
	Competition string `json:"competition"`
	Points      int    `json:"points"`
	Places      int    `json:"places"`
	MaxPlaces   int    `json:"max_places"`
}

type bookingDTO struct {
	Club         string           `json:"club"`
	Points       int              `json:"points"`
	Booked       int              `json:"booked"`
	Competitions []competitionDTO `json:"competitions"`
}

func clubPointsToDTO(items []club.Club) []clubPointsDTO {
	out := make([]clubPointsDTO, 0, len(items))
	for _, item := range items {
		out = append(out, clubPointsDTO{Name: item.Name, Points: item.Points})
	}
	return out
}

func competitionToDTO(item usecase.CompetitionView) competitionDTO {
	return competitionDTO{
		Name:           item.Name,
		Date:           item.Date.Format(competition.DateLayout),
		NumberOfPlaces: item.NumberOfPlaces,
		IsPast:         item.IsPast,
	}
}

func competitionsToDTO(items []usecase.CompetitionView) []competitionDTO {
	out := make([]competitionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, competitionToDTO(item))
	}
	return out
}
