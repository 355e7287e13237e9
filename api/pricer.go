package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/banachtech/optionmc/mc"
	"github.com/banachtech/optionmc/pricer"
)

type priceRequest struct {
	Type          string  `json:"type" binding:"required"`
	Spot          float64 `json:"spot"`
	Strike        float64 `json:"strike"`
	Maturity      float64 `json:"maturity" binding:"required"`
	Rate          float64 `json:"rate"`
	Dividend      float64 `json:"dividend"`
	Vol           float64 `json:"vol"`
	Model         string  `json:"model" binding:"required"`
	Paths         int     `json:"paths"`
	Steps         int     `json:"steps"`
	JumpIntensity float64 `json:"jump_intensity"`
	JumpMean      float64 `json:"jump_mean"`
	JumpVol       float64 `json:"jump_vol"`
	Seed          *uint64 `json:"seed"`
}

type priceResponse struct {
	Contract    priceRequest `json:"contract"`
	Price       float64      `json:"price"`
	StdError    float64      `json:"std_error"`
	Description string       `json:"description"`
}

func (server *Server) price(c *gin.Context) {
	var req priceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	opt, err := mc.NewEuropeanOption(mc.OptionType(req.Type), req.Spot, req.Strike, req.Maturity, req.Rate, req.Dividend, req.Vol, req.Model)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	seed := pricer.DefaultSeed
	if req.Seed != nil {
		seed = *req.Seed
	}

	var value, stderr float64
	switch opt.Model() {
	case mc.MonteCarlo:
		paths := req.Paths
		if paths == 0 {
			paths = mc.DefaultMCPaths
		}
		par, err := mc.NewMCParams(paths)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		value, stderr = pricer.NewMonteCarlo(opt, par).WithSeed(seed).Estimate()
	case mc.JumpDiffusion:
		paths := req.Paths
		if paths == 0 {
			paths = mc.DefaultJumpPaths
		}
		steps := req.Steps
		if steps == 0 {
			steps = mc.DefaultJumpSteps
		}
		par, err := mc.NewJumpParams(req.JumpIntensity, req.JumpMean, req.JumpVol, steps, paths)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		value, stderr = pricer.NewJumpDiffusion(opt, par).WithSeed(seed).Estimate()
	default:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "msg": fmt.Sprintf("model %s has no simulation backend", opt.Model())})
		return
	}

	server.logger.WithFields(logrus.Fields{
		"model": opt.Model(),
		"type":  opt.Type(),
		"price": value,
	}).Info("priced contract")

	c.JSON(http.StatusOK, priceResponse{Contract: req, Price: value, StdError: stderr, Description: opt.Describe()})
}
