package handler

import (
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/service"
	"github.com/gin-gonic/gin"
)

// DashboardHandler KPI dashboard and report export endpoints
type DashboardHandler struct {
	svc    *service.DashboardService
	report *service.ReportService
	cust   *service.CustomerService
}

func NewDashboardHandler(svc *service.DashboardService, report *service.ReportService, cust *service.CustomerService) *DashboardHandler {
	return &DashboardHandler{svc: svc, report: report, cust: cust}
}

// Admin organization-wide KPIs
// GET /api/v1/dashboard/admin
func (h *DashboardHandler) Admin(c *gin.Context) {
	kpis, err := h.svc.AdminDashboard(c.Request.Context())
	if err != nil {
		InternalError(c, "load admin dashboard failed: "+err.Error())
		return
	}
	Success(c, kpis)
}

// Manager team-scoped KPIs for the calling manager
// GET /api/v1/dashboard/manager
func (h *DashboardHandler) Manager(c *gin.Context) {
	kpis, err := h.svc.ManagerDashboard(c.Request.Context(), GetUserID(c))
	if err != nil {
		InternalError(c, "load manager dashboard failed: "+err.Error())
		return
	}
	Success(c, kpis)
}

// ExportPipeline pipeline valuation workbook, scoped by the caller's role
// GET /api/v1/dashboard/pipeline/export
func (h *DashboardHandler) ExportPipeline(c *gin.Context) {
	scope, err := h.cust.ScopeFor(c.Request.Context(), GetUserRole(c), GetUserID(c))
	if err != nil {
		InternalError(c, "resolve scope failed: "+err.Error())
		return
	}

	f, filename, err := h.report.ExportPipelineReport(c.Request.Context(), scope)
	if err != nil {
		InternalError(c, "export pipeline report failed: "+err.Error())
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write excel: "+err.Error())
	}
}
