package handler

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/repository"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/service"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/testutil"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupCustomerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	custSvc := service.NewCustomerService(repos.Customer, repos.Transaction, repos.User)
	custHandler := NewCustomerHandler(custSvc)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	customers := api.Group("/customers")
	customers.GET("", custHandler.List)
	customers.GET("/:id", custHandler.Get)
	customers.POST("", custHandler.Create)
	customers.PUT("/:id", custHandler.Update)
	customers.PUT("/:id/lead-status", custHandler.UpdateLeadStatus)
	customers.POST("/:id/purchase", custHandler.RecordPurchase)
	customers.POST("/:id/walkout", custHandler.RecordWalkout)

	return router, db
}

func TestCustomerCreate(t *testing.T) {
	router, db := setupCustomerTest(t)
	showroom := testutil.SeedShowroom(t, db, "MG Road")
	token := testutil.AdminTestToken()

	body := map[string]interface{}{
		"name":        "Priya Sharma",
		"phone":       "+91-9800000001",
		"showroom_id": showroom.ID,
		"lead_source": "Walk-in",
		"interest_categories": []map[string]interface{}{
			{
				"category_type": "Diamond",
				"products": []map[string]string{
					{"product_name": "Solitaire Ring", "price_range": "1L-2L"},
				},
			},
		},
	}

	w := testutil.DoRequest(router, "POST", "/api/v1/customers", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	code, _ := data["customer_code"].(string)
	if !strings.HasPrefix(code, "CUS-") {
		t.Errorf("Expected customer_code starting with 'CUS-', got %v", data["customer_code"])
	}
	if data["lead_status"] != entity.LeadStatusNew {
		t.Errorf("Expected lead_status %q, got %v", entity.LeadStatusNew, data["lead_status"])
	}
}

func TestCustomerCreateRejectsUnknownPriceRange(t *testing.T) {
	router, db := setupCustomerTest(t)
	showroom := testutil.SeedShowroom(t, db, "MG Road")
	token := testutil.AdminTestToken()

	body := map[string]interface{}{
		"name":        "Priya Sharma",
		"phone":       "+91-9800000001",
		"showroom_id": showroom.ID,
		"interest_categories": []map[string]interface{}{
			{
				"category_type": "Diamond",
				"products": []map[string]string{
					{"product_name": "Solitaire Ring", "price_range": "about 2 lakhs"},
				},
			},
		},
	}

	w := testutil.DoRequest(router, "POST", "/api/v1/customers", body, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCustomerCreateRequiresAuth(t *testing.T) {
	router, _ := setupCustomerTest(t)

	w := testutil.DoRequest(router, "POST", "/api/v1/customers", map[string]string{"name": "x"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", w.Code)
	}
}

func TestCustomerListScopedToSalesperson(t *testing.T) {
	router, db := setupCustomerTest(t)
	showroom := testutil.SeedShowroom(t, db, "MG Road")
	manager := testutil.SeedUser(t, db, "Manager One", entity.RoleManager, &showroom.ID, nil)
	sp1 := testutil.SeedUser(t, db, "Sales One", entity.RoleSalesperson, &showroom.ID, &manager.ID)
	sp2 := testutil.SeedUser(t, db, "Sales Two", entity.RoleSalesperson, &showroom.ID, &manager.ID)

	testutil.SeedCustomer(t, db, &entity.Customer{
		Name:                  "Customer A",
		ShowroomID:            showroom.ID,
		AssignedSalespersonID: &sp1.ID,
	})
	testutil.SeedCustomer(t, db, &entity.Customer{
		Name:                  "Customer B",
		ShowroomID:            showroom.ID,
		AssignedSalespersonID: &sp2.ID,
	})

	token := testutil.GenerateTestToken(sp1.ID, sp1.Name, sp1.Email, entity.RoleSalesperson, showroom.ID)
	w := testutil.DoRequest(router, "GET", "/api/v1/customers", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("Expected 1 customer for salesperson scope, got %d", len(items))
	}
	first := items[0].(map[string]interface{})
	if first["name"] != "Customer A" {
		t.Errorf("Expected Customer A, got %v", first["name"])
	}

	// manager sees the whole team
	mgrToken := testutil.GenerateTestToken(manager.ID, manager.Name, manager.Email, entity.RoleManager, showroom.ID)
	w = testutil.DoRequest(router, "GET", "/api/v1/customers", nil, mgrToken)
	resp = testutil.ParseResponse(w)
	data = resp["data"].(map[string]interface{})
	items = data["items"].([]interface{})
	if len(items) != 2 {
		t.Fatalf("Expected 2 customers for manager scope, got %d", len(items))
	}
}

func TestCustomerLeadStatusTransition(t *testing.T) {
	router, db := setupCustomerTest(t)
	showroom := testutil.SeedShowroom(t, db, "MG Road")
	customer := testutil.SeedCustomer(t, db, &entity.Customer{
		Name:       "Priya Sharma",
		ShowroomID: showroom.ID,
	})
	token := testutil.AdminTestToken()

	path := fmt.Sprintf("/api/v1/customers/%s/lead-status", customer.ID)
	w := testutil.DoRequest(router, "PUT", path, map[string]string{"lead_status": entity.LeadStatusQualified}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["lead_status"] != entity.LeadStatusQualified {
		t.Errorf("Expected lead_status %q, got %v", entity.LeadStatusQualified, data["lead_status"])
	}

	// unknown status rejected
	w = testutil.DoRequest(router, "PUT", path, map[string]string{"lead_status": "Maybe Later"}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for unknown status, got %d", w.Code)
	}
}

func TestCustomerRecordPurchase(t *testing.T) {
	router, db := setupCustomerTest(t)
	showroom := testutil.SeedShowroom(t, db, "MG Road")
	customer := testutil.SeedCustomer(t, db, &entity.Customer{
		Name:       "Priya Sharma",
		ShowroomID: showroom.ID,
		LeadStatus: entity.LeadStatusNegotiation,
	})
	token := testutil.AdminTestToken()

	path := fmt.Sprintf("/api/v1/customers/%s/purchase", customer.ID)
	w := testutil.DoRequest(router, "POST", path, map[string]interface{}{"amount": 185000.0}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["lead_status"] != entity.LeadStatusClosedWon {
		t.Errorf("Expected lead_status %q, got %v", entity.LeadStatusClosedWon, data["lead_status"])
	}
	if amt, _ := data["purchase_amount"].(float64); amt != 185000 {
		t.Errorf("Expected purchase_amount 185000, got %v", data["purchase_amount"])
	}

	// the sale lands in the transaction ledger
	var count int64
	db.Model(&entity.SalesTransaction{}).Where("customer_id = ?", customer.ID).Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 sales transaction, got %d", count)
	}

	// a repeat purchase adds on
	w = testutil.DoRequest(router, "POST", path, map[string]interface{}{"amount": 15000.0}, token)
	resp = testutil.ParseResponse(w)
	data = resp["data"].(map[string]interface{})
	if amt, _ := data["purchase_amount"].(float64); amt != 200000 {
		t.Errorf("Expected purchase_amount 200000 after repeat purchase, got %v", data["purchase_amount"])
	}
}

func TestCustomerRecordWalkout(t *testing.T) {
	router, db := setupCustomerTest(t)
	showroom := testutil.SeedShowroom(t, db, "MG Road")
	customer := testutil.SeedCustomer(t, db, &entity.Customer{
		Name:       "Priya Sharma",
		ShowroomID: showroom.ID,
		LeadStatus: entity.LeadStatusContacted,
	})
	token := testutil.AdminTestToken()

	path := fmt.Sprintf("/api/v1/customers/%s/walkout", customer.ID)
	w := testutil.DoRequest(router, "POST", path, map[string]string{"reason": "Price too high"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["lead_status"] != entity.LeadStatusClosedLost {
		t.Errorf("Expected lead_status %q, got %v", entity.LeadStatusClosedLost, data["lead_status"])
	}
	if data["walkout_reason"] != "Price too high" {
		t.Errorf("Expected walkout_reason 'Price too high', got %v", data["walkout_reason"])
	}
}
