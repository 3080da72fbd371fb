package router

import "github.com/gin-gonic/gin"

// Module mounts one feature's routes. The Registry decides which group it
// receives: /api for Add, the engine root for AddRoot.
type Module interface {
	Register(rg *gin.RouterGroup)
}

// ModuleFunc lets a plain function act as a Module.
type ModuleFunc func(rg *gin.RouterGroup)

func (f ModuleFunc) Register(rg *gin.RouterGroup) { f(rg) }
