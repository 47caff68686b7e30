package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/pipeline"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/repository"
	"github.com/google/uuid"
)

// CustomerService customer/lead management
type CustomerService struct {
	repo     *repository.CustomerRepository
	txnRepo  *repository.TransactionRepository
	userRepo *repository.UserRepository
}

func NewCustomerService(repo *repository.CustomerRepository, txnRepo *repository.TransactionRepository, userRepo *repository.UserRepository) *CustomerService {
	return &CustomerService{repo: repo, txnRepo: txnRepo, userRepo: userRepo}
}

// ScopeFor resolves the customer visibility scope for a portal role: admins
// see the whole chain, managers their team's customers, salespeople their
// own assignments.
func (s *CustomerService) ScopeFor(ctx context.Context, role, userID string) (repository.CustomerScope, error) {
	switch role {
	case entity.RoleManager:
		ids, err := s.userRepo.SalespersonIDsByManager(ctx, userID)
		if err != nil {
			return repository.CustomerScope{}, err
		}
		if len(ids) == 0 {
			ids = []string{userID} // a team of none sees nothing, not everything
		}
		return repository.CustomerScope{SalespersonIDs: ids}, nil
	case entity.RoleSalesperson:
		return repository.CustomerScope{SalespersonIDs: []string{userID}}, nil
	default:
		return repository.CustomerScope{}, nil
	}
}

// CreateCustomerRequest new customer payload
type CreateCustomerRequest struct {
	Name                  string                    `json:"name" binding:"required"`
	Phone                 string                    `json:"phone" binding:"required"`
	Email                 string                    `json:"email"`
	Address               string                    `json:"address"`
	ShowroomID            string                    `json:"showroom_id" binding:"required"`
	AssignedSalespersonID *string                   `json:"assigned_salesperson_id"`
	LeadSource            string                    `json:"lead_source"`
	InterestCategories    entity.InterestCategories `json:"interest_categories"`
	Notes                 string                    `json:"notes"`
}

// validateInterests enforces the tagged-variant schema at the data-access
// boundary: known category types, known price-range labels.
func validateInterests(categories entity.InterestCategories) error {
	for _, cat := range categories {
		switch cat.CategoryType {
		case entity.CategoryDiamond, entity.CategoryGold, entity.CategoryPolki:
		default:
			return fmt.Errorf("unknown category type %q", cat.CategoryType)
		}
		for _, p := range cat.Products {
			if p.PriceRange != "" && !pipeline.IsKnownPriceRange(p.PriceRange) {
				return fmt.Errorf("unknown price range %q", p.PriceRange)
			}
		}
	}
	return nil
}

func (s *CustomerService) Create(ctx context.Context, req *CreateCustomerRequest, userID string) (*entity.Customer, error) {
	if err := validateInterests(req.InterestCategories); err != nil {
		return nil, err
	}

	code, err := s.repo.GenerateCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate customer code: %w", err)
	}

	customer := &entity.Customer{
		ID:                    uuid.New().String(),
		CustomerCode:          code,
		Name:                  req.Name,
		Phone:                 req.Phone,
		Email:                 req.Email,
		Address:               req.Address,
		ShowroomID:            req.ShowroomID,
		AssignedSalespersonID: req.AssignedSalespersonID,
		LeadStatus:            entity.LeadStatusNew,
		LeadSource:            req.LeadSource,
		InterestCategories:    req.InterestCategories,
		Notes:                 req.Notes,
		CreatedBy:             userID,
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return customer, nil
}

func (s *CustomerService) Get(ctx context.Context, id string) (*entity.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context, scope repository.CustomerScope, page, pageSize int, filters map[string]string) ([]entity.Customer, int64, error) {
	return s.repo.FindAll(ctx, scope, page, pageSize, filters)
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// UpdateCustomerRequest customer update payload; empty fields are left
// unchanged, a non-nil interest slice replaces the stored one
type UpdateCustomerRequest struct {
	Name                  string                    `json:"name"`
	Phone                 string                    `json:"phone"`
	Email                 string                    `json:"email"`
	Address               string                    `json:"address"`
	AssignedSalespersonID *string                   `json:"assigned_salesperson_id"`
	LeadSource            string                    `json:"lead_source"`
	InterestCategories    entity.InterestCategories `json:"interest_categories"`
	Notes                 string                    `json:"notes"`
}

func (s *CustomerService) Update(ctx context.Context, id string, req *UpdateCustomerRequest) (*entity.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		customer.Name = req.Name
	}
	if req.Phone != "" {
		customer.Phone = req.Phone
	}
	if req.Email != "" {
		customer.Email = req.Email
	}
	if req.Address != "" {
		customer.Address = req.Address
	}
	if req.AssignedSalespersonID != nil {
		customer.AssignedSalespersonID = req.AssignedSalespersonID
	}
	if req.LeadSource != "" {
		customer.LeadSource = req.LeadSource
	}
	if req.InterestCategories != nil {
		if err := validateInterests(req.InterestCategories); err != nil {
			return nil, err
		}
		customer.InterestCategories = req.InterestCategories
	}
	if req.Notes != "" {
		customer.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return customer, nil
}

// UpdateLeadStatus moves a customer along the funnel
func (s *CustomerService) UpdateLeadStatus(ctx context.Context, id, status string) (*entity.Customer, error) {
	if !entity.IsOpenLeadStatus(status) && status != entity.LeadStatusClosedWon && status != entity.LeadStatusClosedLost {
		return nil, fmt.Errorf("unknown lead status %q", status)
	}

	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.LeadStatus = status
	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("update lead status: %w", err)
	}
	return customer, nil
}

// RecordPurchaseRequest purchase payload
type RecordPurchaseRequest struct {
	Amount          float64    `json:"amount" binding:"required,gt=0"`
	TransactionDate *time.Time `json:"transaction_date"`
	Notes           string     `json:"notes"`
}

// RecordPurchase marks the customer converted: sets purchase_amount, moves
// the funnel to Closed Won and writes the sales transaction that feeds the
// YTD/MTD windows.
func (s *CustomerService) RecordPurchase(ctx context.Context, id string, req *RecordPurchaseRequest, userID string) (*entity.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	txnDate := time.Now()
	if req.TransactionDate != nil {
		txnDate = *req.TransactionDate
	}

	amount := req.Amount
	if customer.PurchaseAmount != nil {
		amount += *customer.PurchaseAmount // repeat purchase adds on
	}
	customer.PurchaseAmount = &amount
	customer.LeadStatus = entity.LeadStatusClosedWon

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("record purchase: %w", err)
	}

	txn := &entity.SalesTransaction{
		ID:              uuid.New().String(),
		ShowroomID:      customer.ShowroomID,
		CustomerID:      customer.ID,
		SalespersonID:   customer.AssignedSalespersonID,
		TotalAmount:     req.Amount,
		TransactionDate: txnDate,
		Notes:           req.Notes,
		CreatedBy:       userID,
	}
	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("record transaction: %w", err)
	}

	return customer, nil
}

// RecordWalkoutRequest walkout payload
type RecordWalkoutRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// RecordWalkout closes the customer as lost with the stated reason
func (s *CustomerService) RecordWalkout(ctx context.Context, id string, req *RecordWalkoutRequest) (*entity.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.LeadStatus = entity.LeadStatusClosedLost
	customer.WalkoutReason = req.Reason

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("record walkout: %w", err)
	}
	return customer, nil
}
