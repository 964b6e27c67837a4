package routes

import (
	"github.com/gin-gonic/gin"

	"gestion_tramites/internal/adapter/http/handlers"
)

const (
	PathCases              = "/cases"
	PathProcedures         = "/procedures"
	PathClients            = "/clients"
	PathProcedureDocuments = "/procedure-documents"
	PathClientDocuments    = "/client-documents"
	PathRecycleBin         = "/recycle-bin"
)

func addCaseRoutes(rg *gin.RouterGroup, h *handlers.CaseHandler) {
	cases := rg.Group(PathCases)
	{
		cases.POST("", h.CreateCase)
		cases.GET("/:id", h.GetCase)
		cases.PATCH("/:id/status", h.ChangeStatus)
		cases.GET("/:id/transitions", h.AllowedTransitions)
		cases.PATCH("/:id/priority", h.UpdatePriority)
		cases.GET("/:id/aggregate", h.Aggregate)
		cases.DELETE("/:id", h.DeleteCase)
	}
}

func addProcedureRoutes(rg *gin.RouterGroup, h *handlers.ProcedureHandler) {
	procedures := rg.Group(PathProcedures)
	{
		procedures.POST("", h.CreateProcedure)
		procedures.GET("/:id", h.GetProcedure)
		procedures.PATCH("/:id/status", h.ChangeStatus)
		procedures.GET("/:id/transitions", h.AllowedTransitions)
		procedures.PATCH("/:id/progress", h.UpdateProgress)
		procedures.PATCH("/:id/semaphore", h.SetSemaphore)
		procedures.GET("/:id/signals", h.Signals)
		procedures.DELETE("/:id", h.DeleteProcedure)
	}
}

func addClientRoutes(rg *gin.RouterGroup, h *handlers.ClientHandler) {
	clients := rg.Group(PathClients)
	{
		clients.GET("/:id/overview", h.Overview)
		clients.DELETE("/:id", h.DeleteClient)
	}
}

func addDocumentRoutes(rg *gin.RouterGroup, h *handlers.DocumentHandler) {
	docs := rg.Group(PathProcedureDocuments)
	{
		docs.POST("/:id/cycle", h.CycleProcedureDocument)
		docs.POST("/:id/reject", h.RejectProcedureDocument)
		docs.DELETE("/:id", h.DeleteProcedureDocument)
	}

	clientDocs := rg.Group(PathClientDocuments)
	{
		clientDocs.POST("/:id/cycle", h.CycleClientDocument)
	}
}

func addRecycleBinRoutes(rg *gin.RouterGroup, h *handlers.RecycleBinHandler) {
	bin := rg.Group(PathRecycleBin)
	{
		bin.GET("", h.List)
		bin.POST("/:kind/:id/restore", h.Restore)
		bin.DELETE("/:kind/:id", h.Purge)
	}
}
