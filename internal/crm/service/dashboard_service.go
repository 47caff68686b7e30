package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/pipeline"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/repository"
	"github.com/redis/go-redis/v9"
)

// kpiCacheTTL keeps dashboard loads cheap without letting figures go stale
// for long. A render is a full customer-set scan.
const kpiCacheTTL = 2 * time.Minute

// DashboardService assembles role-scoped dashboard KPI records. All fetching
// and scoping happens here; the math lives in the pipeline package.
type DashboardService struct {
	customerRepo *repository.CustomerRepository
	txnRepo      *repository.TransactionRepository
	showroomRepo *repository.ShowroomRepository
	userRepo     *repository.UserRepository
	rdb          *redis.Client
}

func NewDashboardService(
	customerRepo *repository.CustomerRepository,
	txnRepo *repository.TransactionRepository,
	showroomRepo *repository.ShowroomRepository,
	userRepo *repository.UserRepository,
	rdb *redis.Client,
) *DashboardService {
	return &DashboardService{
		customerRepo: customerRepo,
		txnRepo:      txnRepo,
		showroomRepo: showroomRepo,
		userRepo:     userRepo,
		rdb:          rdb,
	}
}

// AdminDashboard composes the chain-wide KPI record, cache-aside in Redis.
func (s *DashboardService) AdminDashboard(ctx context.Context) (*pipeline.KPIRecord, error) {
	const cacheKey = "dashboard:kpi:admin"

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var rec pipeline.KPIRecord
			if json.Unmarshal([]byte(cached), &rec) == nil {
				return &rec, nil
			}
		}
	}

	showroomCount, err := s.showroomRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	managerCount, err := s.userRepo.CountByRole(ctx, entity.RoleManager)
	if err != nil {
		return nil, err
	}
	salespersonCount, err := s.userRepo.CountByRole(ctx, entity.RoleSalesperson)
	if err != nil {
		return nil, err
	}

	rec, err := s.compose(ctx, repository.CustomerScope{}, repository.TxnScope{})
	if err != nil {
		return nil, err
	}
	rec.ShowroomCount = showroomCount
	rec.ManagerCount = managerCount
	rec.SalespersonCount = salespersonCount

	if s.rdb != nil {
		if payload, err := json.Marshal(rec); err == nil {
			s.rdb.Set(ctx, cacheKey, payload, kpiCacheTTL)
		}
	}

	return rec, nil
}

// ManagerDashboard composes the KPI record scoped to the salespeople
// reporting to one manager.
func (s *DashboardService) ManagerDashboard(ctx context.Context, managerID string) (*pipeline.KPIRecord, error) {
	salespersonIDs, err := s.userRepo.SalespersonIDsByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if len(salespersonIDs) == 0 {
		// A manager without a team sees an empty dashboard, not everyone's.
		rec := pipeline.ComposeKPIs(pipeline.KPIInput{})
		return &rec, nil
	}

	rec, err := s.compose(ctx,
		repository.CustomerScope{SalespersonIDs: salespersonIDs},
		repository.TxnScope{SalespersonIDs: salespersonIDs},
	)
	if err != nil {
		return nil, err
	}
	rec.SalespersonCount = int64(len(salespersonIDs))
	return rec, nil
}

// compose fetches the scoped snapshot and time-window sums, then hands
// everything to the pure composer.
func (s *DashboardService) compose(ctx context.Context, custScope repository.CustomerScope, txnScope repository.TxnScope) (*pipeline.KPIRecord, error) {
	customers, err := s.customerRepo.FindAllInScope(ctx, custScope)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ytd, err := s.windowSums(ctx, txnScope, time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()), now)
	if err != nil {
		return nil, err
	}
	mtd, err := s.windowSums(ctx, txnScope, time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now)
	if err != nil {
		return nil, err
	}

	rec := pipeline.ComposeKPIs(pipeline.KPIInput{
		Customers: customers,
		YTD:       ytd,
		MTD:       mtd,
	})
	return &rec, nil
}

// windowSums sums [start, now) and the matching window one year earlier.
func (s *DashboardService) windowSums(ctx context.Context, scope repository.TxnScope, start, now time.Time) (pipeline.PeriodSums, error) {
	current, err := s.txnRepo.SumBetween(ctx, start, now, scope)
	if err != nil {
		return pipeline.PeriodSums{}, err
	}
	previous, err := s.txnRepo.SumBetween(ctx, start.AddDate(-1, 0, 0), now.AddDate(-1, 0, 0), scope)
	if err != nil {
		return pipeline.PeriodSums{}, err
	}
	return pipeline.PeriodSums{Current: current, Previous: previous}, nil
}
