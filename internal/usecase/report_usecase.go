package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
)

// StatusCount is one dashboard slice: how many orders sit in a status.
type StatusCount struct {
	StatusID string
	Label    string
	Count    int
}

// Dashboard aggregates the whole shop at a glance: order volume per
// status, money already collected, money still pending, and recorded
// expenses netted against income.
type Dashboard struct {
	TotalOrders   int
	StatusCounts  []StatusCount
	AmountPaid    decimal.Decimal
	AmountPending decimal.Decimal
	ExpenseTotal  decimal.Decimal
	NetIncome     decimal.Decimal
}

// OrderCover is the printable cover sheet for a single order: the order
// itself plus every referenced lookup resolved to its label.
type OrderCover struct {
	Order              entities.ServiceOrder
	Client             entities.Client
	BrandLabel         string
	EquipmentTypeLabel string
	StatusLabel        string
	GrossTotal         decimal.Decimal
	DiscountTotal      decimal.Decimal
	NetTotal           decimal.Decimal
	PendingBalance     decimal.Decimal
}

// ClientReportRow summarizes one client's history.
type ClientReportRow struct {
	Client     entities.Client
	OrderCount int
	Revenue    decimal.Decimal
	Pending    decimal.Decimal
}

type IReportUseCase interface {
	Dashboard(ctx context.Context) (Dashboard, error)
	OrderCover(ctx context.Context, orderID string) (OrderCover, error)
	ClientReport(ctx context.Context) ([]ClientReportRow, error)
}

type ReportUseCase struct {
	orderRepo   interfaces.IServiceOrderRepository
	clientRepo  interfaces.IClientRepository
	brandRepo   interfaces.IBrandRepository
	equipRepo   interfaces.IEquipmentTypeRepository
	statusRepo  interfaces.IStatusRepository
	expenseRepo interfaces.IExpenseRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	orderRepo interfaces.IServiceOrderRepository,
	clientRepo interfaces.IClientRepository,
	brandRepo interfaces.IBrandRepository,
	equipRepo interfaces.IEquipmentTypeRepository,
	statusRepo interfaces.IStatusRepository,
	expenseRepo interfaces.IExpenseRepository,
) *ReportUseCase {
	return &ReportUseCase{
		orderRepo:   orderRepo,
		clientRepo:  clientRepo,
		brandRepo:   brandRepo,
		equipRepo:   equipRepo,
		statusRepo:  statusRepo,
		expenseRepo: expenseRepo,
	}
}

func (u *ReportUseCase) Dashboard(ctx context.Context) (Dashboard, error) {
	orders, err := u.orderRepo.List(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	statuses, err := u.statusRepo.List(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	expenses, err := u.expenseRepo.List(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	d := Dashboard{TotalOrders: len(orders)}
	counts := make(map[string]int, len(statuses))
	for _, o := range orders {
		counts[o.StatusID]++
		d.AmountPaid = d.AmountPaid.Add(o.AmountPaid)
		d.AmountPending = d.AmountPending.Add(o.PendingBalance())
	}
	for _, st := range statuses {
		d.StatusCounts = append(d.StatusCounts, StatusCount{
			StatusID: st.ID,
			Label:    st.Label,
			Count:    counts[st.ID],
		})
	}
	for _, e := range expenses {
		d.ExpenseTotal = d.ExpenseTotal.Add(e.Amount)
	}
	d.NetIncome = d.AmountPaid.Sub(d.ExpenseTotal)
	return d, nil
}

func (u *ReportUseCase) OrderCover(ctx context.Context, orderID string) (OrderCover, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return OrderCover{}, ErrInvalidOrderID
	}
	o, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return OrderCover{}, err
	}
	if o.ID == "" {
		return OrderCover{}, ErrOrderNotFound
	}

	cover := OrderCover{
		Order:          o,
		GrossTotal:     o.GrossTotal(),
		DiscountTotal:  o.DiscountTotal(),
		NetTotal:       o.NetTotal(),
		PendingBalance: o.PendingBalance(),
	}

	if o.ClientID != "" {
		c, err := u.clientRepo.GetByID(ctx, o.ClientID)
		if err != nil {
			return OrderCover{}, err
		}
		cover.Client = c
	}
	if o.BrandID != "" {
		if b, err := u.brandRepo.GetByID(ctx, o.BrandID); err == nil {
			cover.BrandLabel = b.Label
		}
	}
	if o.EquipmentTypeID != "" {
		if e, err := u.equipRepo.GetByID(ctx, o.EquipmentTypeID); err == nil {
			cover.EquipmentTypeLabel = e.Label
		}
	}
	if o.StatusID != "" {
		if st, err := u.statusRepo.GetByID(ctx, o.StatusID); err == nil {
			cover.StatusLabel = st.Label
		}
	}
	return cover, nil
}

func (u *ReportUseCase) ClientReport(ctx context.Context) ([]ClientReportRow, error) {
	clients, err := u.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := u.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	byClient := make(map[string][]entities.ServiceOrder, len(clients))
	for _, o := range orders {
		byClient[o.ClientID] = append(byClient[o.ClientID], o)
	}

	rows := make([]ClientReportRow, 0, len(clients))
	for _, c := range clients {
		row := ClientReportRow{Client: c}
		for _, o := range byClient[c.ID] {
			row.OrderCount++
			row.Revenue = row.Revenue.Add(o.AmountPaid)
			row.Pending = row.Pending.Add(o.PendingBalance())
		}
		rows = append(rows, row)
	}
	return rows, nil
}
