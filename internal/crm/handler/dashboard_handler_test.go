package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/repository"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/service"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/testutil"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func setupDashboardTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	dashSvc := service.NewDashboardService(repos.Customer, repos.Transaction, repos.Showroom, repos.User, nil)
	reportSvc := service.NewReportService(repos.Customer)
	custSvc := service.NewCustomerService(repos.Customer, repos.Transaction, repos.User)
	dashHandler := NewDashboardHandler(dashSvc, reportSvc, custSvc)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	dashboard := api.Group("/dashboard")
	dashboard.GET("/admin", middleware.RequireRole(entity.RoleAdmin), dashHandler.Admin)
	dashboard.GET("/manager", middleware.RequireRole(entity.RoleManager), dashHandler.Manager)
	dashboard.GET("/pipeline/export", middleware.RequireRole(entity.RoleAdmin, entity.RoleManager), dashHandler.ExportPipeline)

	return router, db
}

func diamondInterest(priceRange string) entity.InterestCategories {
	return entity.InterestCategories{
		{
			CategoryType: entity.CategoryDiamond,
			Products: []entity.InterestProduct{
				{ProductName: "Solitaire Ring", PriceRange: priceRange},
			},
		},
	}
}

func seedDashboardData(t *testing.T, db *gorm.DB) (*entity.User, *entity.User) {
	t.Helper()
	showroom := testutil.SeedShowroom(t, db, "MG Road")
	manager := testutil.SeedUser(t, db, "Manager One", entity.RoleManager, &showroom.ID, nil)
	sp := testutil.SeedUser(t, db, "Sales One", entity.RoleSalesperson, &showroom.ID, &manager.ID)

	// one open lead carrying a 1L-2L interest: midpoint 150000
	testutil.SeedCustomer(t, db, &entity.Customer{
		Name:                  "Open Lead",
		ShowroomID:            showroom.ID,
		AssignedSalespersonID: &sp.ID,
		LeadStatus:            entity.LeadStatusQualified,
		LeadSource:            "Walk-in",
		InterestCategories:    diamondInterest("1L-2L"),
	})

	// one converted customer with a recorded sale
	amount := 75000.0
	converted := testutil.SeedCustomer(t, db, &entity.Customer{
		Name:                  "Converted",
		ShowroomID:            showroom.ID,
		AssignedSalespersonID: &sp.ID,
		LeadStatus:            entity.LeadStatusClosedWon,
		LeadSource:            "Referral",
		InterestCategories:    diamondInterest("50K-75K"),
		PurchaseAmount:        &amount,
	})
	txn := &entity.SalesTransaction{
		ID:              uuid.New().String(),
		ShowroomID:      showroom.ID,
		CustomerID:      converted.ID,
		SalespersonID:   &sp.ID,
		TotalAmount:     amount,
		TransactionDate: time.Now().Add(-time.Minute),
	}
	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("Failed to seed transaction: %v", err)
	}

	// one lost customer with a walkout reason
	testutil.SeedCustomer(t, db, &entity.Customer{
		Name:                  "Walked Out",
		ShowroomID:            showroom.ID,
		AssignedSalespersonID: &sp.ID,
		LeadStatus:            entity.LeadStatusClosedLost,
		LeadSource:            "Walk-in",
		WalkoutReason:         "Price too high",
	})

	return manager, sp
}

func TestAdminDashboardKPIs(t *testing.T) {
	router, db := setupDashboardTest(t)
	seedDashboardData(t, db)
	token := testutil.AdminTestToken()

	w := testutil.DoRequest(router, "GET", "/api/v1/dashboard/admin", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})

	if v, _ := data["total_customers"].(float64); v != 3 {
		t.Errorf("Expected total_customers 3, got %v", data["total_customers"])
	}
	if v, _ := data["open_opportunities"].(float64); v != 1 {
		t.Errorf("Expected open_opportunities 1, got %v", data["open_opportunities"])
	}
	if v, _ := data["active_pipeline_value"].(float64); v != 150000 {
		t.Errorf("Expected active_pipeline_value 150000, got %v", data["active_pipeline_value"])
	}
	if data["active_pipeline_amount"] != "₹1,50,000" {
		t.Errorf("Expected active_pipeline_amount ₹1,50,000, got %v", data["active_pipeline_amount"])
	}
	if v, _ := data["converted_customers"].(float64); v != 1 {
		t.Errorf("Expected converted_customers 1, got %v", data["converted_customers"])
	}
	if v, _ := data["converted_revenue"].(float64); v != 75000 {
		t.Errorf("Expected converted_revenue 75000, got %v", data["converted_revenue"])
	}
	if data["conversion_rate"] != "33.3" {
		t.Errorf("Expected conversion_rate 33.3, got %v", data["conversion_rate"])
	}
	if v, _ := data["ytd_sales"].(float64); v != 75000 {
		t.Errorf("Expected ytd_sales 75000, got %v", data["ytd_sales"])
	}
	if v, _ := data["ytd_change_pct"].(float64); v != 100 {
		t.Errorf("Expected ytd_change_pct 100 on zero baseline, got %v", data["ytd_change_pct"])
	}
	if v, _ := data["showroom_count"].(float64); v != 1 {
		t.Errorf("Expected showroom_count 1, got %v", data["showroom_count"])
	}
	if v, _ := data["salesperson_count"].(float64); v != 1 {
		t.Errorf("Expected salesperson_count 1, got %v", data["salesperson_count"])
	}

	sources, _ := data["lead_sources"].([]interface{})
	if len(sources) != 2 {
		t.Fatalf("Expected 2 lead sources, got %d", len(sources))
	}
	top := sources[0].(map[string]interface{})
	if top["label"] != "Walk-in" {
		t.Errorf("Expected top lead source Walk-in, got %v", top["label"])
	}
	if v, _ := top["count"].(float64); v != 2 {
		t.Errorf("Expected Walk-in count 2, got %v", top["count"])
	}

	walkouts, _ := data["walkout_reasons"].([]interface{})
	if len(walkouts) != 1 {
		t.Fatalf("Expected 1 walkout reason, got %d", len(walkouts))
	}
	if walkouts[0].(map[string]interface{})["label"] != "Price too high" {
		t.Errorf("Expected walkout reason 'Price too high', got %v", walkouts[0])
	}
}

func TestAdminDashboardForbiddenForSalesperson(t *testing.T) {
	router, db := setupDashboardTest(t)
	_, sp := seedDashboardData(t, db)

	token := testutil.GenerateTestToken(sp.ID, sp.Name, sp.Email, entity.RoleSalesperson, "")
	w := testutil.DoRequest(router, "GET", "/api/v1/dashboard/admin", nil, token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("Expected 403, got %d", w.Code)
	}
}

func TestManagerDashboardScopedToTeam(t *testing.T) {
	router, db := setupDashboardTest(t)
	manager, _ := seedDashboardData(t, db)

	// a second team whose figures must not leak into this manager's view
	other := testutil.SeedShowroom(t, db, "Church Street")
	otherMgr := testutil.SeedUser(t, db, "Manager Two", entity.RoleManager, &other.ID, nil)
	otherSp := testutil.SeedUser(t, db, "Sales Two", entity.RoleSalesperson, &other.ID, &otherMgr.ID)
	testutil.SeedCustomer(t, db, &entity.Customer{
		Name:                  "Other Team Lead",
		ShowroomID:            other.ID,
		AssignedSalespersonID: &otherSp.ID,
		LeadStatus:            entity.LeadStatusNew,
		InterestCategories:    diamondInterest(">1CR"),
	})

	token := testutil.GenerateTestToken(manager.ID, manager.Name, manager.Email, entity.RoleManager, "")
	w := testutil.DoRequest(router, "GET", "/api/v1/dashboard/manager", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if v, _ := data["total_customers"].(float64); v != 3 {
		t.Errorf("Expected total_customers 3 for team scope, got %v", data["total_customers"])
	}
	if v, _ := data["active_pipeline_value"].(float64); v != 150000 {
		t.Errorf("Expected active_pipeline_value 150000, got %v", data["active_pipeline_value"])
	}

	// a manager without a team sees zeros, not the whole chain
	lonely := testutil.SeedUser(t, db, "Manager Three", entity.RoleManager, nil, nil)
	token = testutil.GenerateTestToken(lonely.ID, lonely.Name, lonely.Email, entity.RoleManager, "")
	w = testutil.DoRequest(router, "GET", "/api/v1/dashboard/manager", nil, token)
	resp = testutil.ParseResponse(w)
	data = resp["data"].(map[string]interface{})
	if v, _ := data["total_customers"].(float64); v != 0 {
		t.Errorf("Expected total_customers 0 for teamless manager, got %v", data["total_customers"])
	}
}

func TestPipelineExportReturnsWorkbook(t *testing.T) {
	router, db := setupDashboardTest(t)
	seedDashboardData(t, db)
	token := testutil.AdminTestToken()

	w := testutil.DoRequest(router, "GET", "/api/v1/dashboard/pipeline/export", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	ct := w.Header().Get("Content-Type")
	if ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("Expected xlsx content type, got %q", ct)
	}
	if w.Body.Len() == 0 {
		t.Error("Expected non-empty workbook body")
	}
}
