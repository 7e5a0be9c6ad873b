package api

import (
	"fundtrack/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type bucketWeightResponse struct {
	Key    string          `json:"key"`
	Value  domain.Money    `json:"value"`
	Weight decimal.Decimal `json:"weight"`
}

type getDiversificationResponse struct {
	FundID            uuid.UUID              `json:"fundID"`
	AllocationCount   int                    `json:"allocationCount"`
	TotalValue        domain.Money           `json:"totalValue"`
	BySector          []bucketWeightResponse `json:"bySector"`
	BySecurityType    []bucketWeightResponse `json:"bySecurityType"`
	ByStage           []bucketWeightResponse `json:"byStage"`
	ConcentrationRisk decimal.Decimal        `json:"concentrationRisk"`
	LargestWeight     decimal.Decimal        `json:"largestWeight"`
	MoicMean          float64                `json:"moicMean"`
	MoicMedian        float64                `json:"moicMedian"`
	MoicStdev         float64                `json:"moicStdev"`
}

func bucketResponses(buckets []domain.BucketWeight) []bucketWeightResponse {
	out := make([]bucketWeightResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, bucketWeightResponse{Key: b.Key, Value: b.Value, Weight: b.Weight})
	}
	return out
}

func (m ApiHandler) getDiversification(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	fundID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	metrics, err := m.PortfolioService.Diversification(c.Request.Context(), actor, fundID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, getDiversificationResponse{
		FundID:            metrics.FundID,
		AllocationCount:   metrics.AllocationCount,
		TotalValue:        metrics.TotalValue,
		BySector:          bucketResponses(metrics.BySector),
		BySecurityType:    bucketResponses(metrics.BySecurityType),
		ByStage:           bucketResponses(metrics.ByStage),
		ConcentrationRisk: metrics.ConcentrationRisk,
		LargestWeight:     metrics.LargestWeight,
		MoicMean:          metrics.Moic.Mean,
		MoicMedian:        metrics.Moic.Median,
		MoicStdev:         metrics.Moic.Stdev,
	})
}
