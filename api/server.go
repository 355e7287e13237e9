package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Server serves HTTP requests for the option pricing service.
type Server struct {
	router *gin.Engine
	logger *logrus.Logger
}

// NewServer creates a new HTTP server and sets up routing.
func NewServer(logger *logrus.Logger) *Server {
	server := &Server{logger: logger}

	server.setupRouter()
	return server
}

func (server *Server) setupRouter() {
	router := gin.Default()

	router.POST("/v1/price", server.price)
	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
