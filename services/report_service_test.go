package services_test

import (
	"testing"
	"time"

	"backend/entity"
	"backend/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesReportAppliesDiscount(t *testing.T) {
	e := newEnv(t)
	user := e.createCustomer(t, "09120000001")
	rest := e.createRestaurant(t, "09120000002", "0.00")
	item := e.createItem(t, rest.ID, "Pizza", "10.00", "20")

	e.completedOrder(t, user.ID, rest.ID, item.ID)

	report, err := e.Reports.SalesReport(rest.ManagerID, "today", time.Now())
	require.NoError(t, err)
	require.Len(t, report.Items, 1)

	// one unit at 10.00 with a 20% discount
	assert.Equal(t, "Pizza", report.Items[0].Name)
	assert.Equal(t, 1, report.Items[0].TotalCount)
	assertDecimal(t, "8.00", report.Items[0].TotalPrice)
	assertDecimal(t, "8.00", report.TotalIncome)
}

func TestSalesReportAggregatesPerItem(t *testing.T) {
	e := newEnv(t)
	user := e.createCustomer(t, "09120000001")
	rest := e.createRestaurant(t, "09120000002", "0.00")
	pizza := e.createItem(t, rest.ID, "Pizza", "10.00", "0")
	cola := e.createItem(t, rest.ID, "Cola", "2.00", "0")

	e.completedOrder(t, user.ID, rest.ID, pizza.ID)
	e.completedOrder(t, user.ID, rest.ID, pizza.ID)
	e.completedOrder(t, user.ID, rest.ID, cola.ID)

	report, err := e.Reports.SalesReport(rest.ManagerID, "today", time.Now())
	require.NoError(t, err)
	require.Len(t, report.Items, 2)

	byName := map[string]services.SoldItem{}
	for _, it := range report.Items {
		byName[it.Name] = it
	}
	assert.Equal(t, 2, byName["Pizza"].TotalCount)
	assertDecimal(t, "20.00", byName["Pizza"].TotalPrice)
	assert.Equal(t, 1, byName["Cola"].TotalCount)
	assertDecimal(t, "22.00", report.TotalIncome)
}

func TestSalesReportSkipsUnfinishedOrders(t *testing.T) {
	e := newEnv(t)
	user := e.createCustomer(t, "09120000001")
	rest := e.createRestaurant(t, "09120000002", "0.00")
	item := e.createItem(t, rest.ID, "Pizza", "10.00", "0")

	// pending order, then a cancelled one
	createTestOrder(t, e, user.ID, rest.ID, item.ID)
	cancelled := createTestOrder(t, e, user.ID, rest.ID, item.ID)
	require.NoError(t, e.Orders.UpdateState(rest.ManagerID, cancelled, entity.OrderCancelled))

	report, err := e.Reports.SalesReport(rest.ManagerID, "today", time.Now())
	require.NoError(t, err)
	assert.Empty(t, report.Items)
	assertDecimal(t, "0", report.TotalIncome)
}

func TestSalesReportWindows(t *testing.T) {
	e := newEnv(t)
	user := e.createCustomer(t, "09120000001")
	rest := e.createRestaurant(t, "09120000002", "0.00")
	item := e.createItem(t, rest.ID, "Pizza", "10.00", "0")

	orderID := e.completedOrder(t, user.ID, rest.ID, item.ID)

	// backdate the order by ten days: out of today and last_week, still
	// inside last_month
	tenDaysAgo := time.Now().AddDate(0, 0, -10)
	require.NoError(t, e.DB.Model(&entity.Order{}).Where("id = ?", orderID).Update("order_date", tenDaysAgo).Error)

	now := time.Now()
	for filter, want := range map[string]int{"today": 0, "last_week": 0, "last_month": 1} {
		report, err := e.Reports.SalesReport(rest.ManagerID, filter, now)
		require.NoError(t, err)
		assert.Len(t, report.Items, want, "filter %s", filter)
	}
}

func TestSalesReportRejectsUnknownFilter(t *testing.T) {
	e := newEnv(t)
	rest := e.createRestaurant(t, "09120000002", "0.00")

	_, err := e.Reports.SalesReport(rest.ManagerID, "last_year", time.Now())
	assert.ErrorIs(t, err, services.ErrInvalidFilter)
}

func TestSalesReportScopedToOwnRestaurant(t *testing.T) {
	e := newEnv(t)
	user := e.createCustomer(t, "09120000001")
	rest := e.createRestaurant(t, "09120000002", "0.00")
	otherRest := e.createRestaurant(t, "09120000004", "0.00")
	item := e.createItem(t, rest.ID, "Pizza", "10.00", "0")

	e.completedOrder(t, user.ID, rest.ID, item.ID)

	report, err := e.Reports.SalesReport(otherRest.ManagerID, "today", time.Now())
	require.NoError(t, err)
	assert.Empty(t, report.Items)
}
