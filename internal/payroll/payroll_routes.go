package payroll

import (
	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	enforcer *casbin.Enforcer,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	payrolls := r.Group("/payroll")
	payrolls.Use(middleware.AuthMiddleware())
	{
		payrolls.GET("/preview", rbac.Authorize(enforcer, "payroll", "read"), handler.Preview)
		payrolls.GET("/salaries/:employee_id/:month", rbac.Authorize(enforcer, "payroll", "read"), handler.GetSalary)
		payrolls.GET("/payslips/:employee_id/:month/download", rbac.Authorize(enforcer, "payroll", "read"), handler.DownloadPayslip)

		if redisClient != nil {
			payrolls.POST(
				"/generate",
				middleware.Idempotency(redisClient),
				rbac.Authorize(enforcer, "payroll", "generate"),
				handler.Generate,
			)
		} else {
			payrolls.POST("/generate", rbac.Authorize(enforcer, "payroll", "generate"), handler.Generate)
		}
		payrolls.POST("/generate-all", rbac.Authorize(enforcer, "payroll", "generate"), handler.GenerateAll)
	}
}
