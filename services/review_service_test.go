package services_test

import (
	"testing"

	"backend/entity"
	"backend/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *env) completedOrder(t *testing.T, userID, restID, itemID uint) uint {
	t.Helper()
	orderID := createTestOrder(t, e, userID, restID, itemID)
	rest, err := e.Restaurant.PublicDetail(restID)
	require.NoError(t, err)
	require.NoError(t, e.Orders.UpdateState(rest.ManagerID, orderID, entity.OrderPreparing))
	require.NoError(t, e.Orders.UpdateState(rest.ManagerID, orderID, entity.OrderCompleted))
	return orderID
}

func TestCreateReviewOnCompletedOrder(t *testing.T) {
	e := newEnv(t)
	user := e.createCustomer(t, "09120000001")
	rest := e.createRestaurant(t, "09120000002", "5.00")
	item := e.createItem(t, rest.ID, "Pizza", "10.00", "0")
	orderID := e.completedOrder(t, user.ID, rest.ID, item.ID)

	review, err := e.Reviews.Create(user.ID, &services.CreateReviewIn{OrderID: orderID, Score: 4, Description: "tasty"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, review.UserID)
	assert.Equal(t, orderID, review.OrderID)
	assert.Equal(t, 4, review.Score)
}

func TestCreateReviewRejectsUnfinishedOrder(t *testing.T) {
	e := newEnv(t)
	user := e.createCustomer(t, "09120000001")
	rest := e.createRestaurant(t, "09120000002", "5.00")
	item := e.createItem(t, rest.ID, "Pizza", "10.00", "0")
	orderID := createTestOrder(t, e, user.ID, rest.ID, item.ID)

	_, err := e.Reviews.Create(user.ID, &services.CreateReviewIn{OrderID: orderID, Score: 5})
	assert.ErrorIs(t, err, services.ErrOrderNotCompleted)

	require.NoError(t, e.Orders.UpdateState(rest.ManagerID, orderID, entity.OrderCancelled))
	_, err = e.Reviews.Create(user.ID, &services.CreateReviewIn{OrderID: orderID, Score: 5})
	assert.ErrorIs(t, err, services.ErrOrderNotCompleted)
}

func TestCreateReviewRejectsForeignAndMissingOrders(t *testing.T) {
	e := newEnv(t)
	user := e.createCustomer(t, "09120000001")
	other := e.createCustomer(t, "09120000003")
	rest := e.createRestaurant(t, "09120000002", "5.00")
	item := e.createItem(t, rest.ID, "Pizza", "10.00", "0")
	orderID := e.completedOrder(t, user.ID, rest.ID, item.ID)

	_, err := e.Reviews.Create(other.ID, &services.CreateReviewIn{OrderID: orderID, Score: 5})
	assert.ErrorIs(t, err, services.ErrOrderNotReviewable)

	_, err = e.Reviews.Create(user.ID, &services.CreateReviewIn{OrderID: 999, Score: 5})
	assert.ErrorIs(t, err, services.ErrOrderNotReviewable)
}

func TestCreateReviewOncePerOrder(t *testing.T) {
	e := newEnv(t)
	user := e.createCustomer(t, "09120000001")
	rest := e.createRestaurant(t, "09120000002", "5.00")
	item := e.createItem(t, rest.ID, "Pizza", "10.00", "0")
	orderID := e.completedOrder(t, user.ID, rest.ID, item.ID)

	_, err := e.Reviews.Create(user.ID, &services.CreateReviewIn{OrderID: orderID, Score: 3})
	require.NoError(t, err)

	_, err = e.Reviews.Create(user.ID, &services.CreateReviewIn{OrderID: orderID, Score: 5})
	assert.ErrorIs(t, err, services.ErrDuplicateReview)
}

func TestListForItemCollectsReviewsAcrossOrders(t *testing.T) {
	e := newEnv(t)
	user := e.createCustomer(t, "09120000001")
	rest := e.createRestaurant(t, "09120000002", "5.00")
	pizza := e.createItem(t, rest.ID, "Pizza", "10.00", "0")
	cola := e.createItem(t, rest.ID, "Cola", "2.00", "0")

	first := e.completedOrder(t, user.ID, rest.ID, pizza.ID)
	second := e.completedOrder(t, user.ID, rest.ID, pizza.ID)
	colaOrder := e.completedOrder(t, user.ID, rest.ID, cola.ID)

	for _, o := range []uint{first, second, colaOrder} {
		_, err := e.Reviews.Create(user.ID, &services.CreateReviewIn{OrderID: o, Score: 5})
		require.NoError(t, err)
	}

	reviews, err := e.Reviews.ListForItem(pizza.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	_, err = e.Reviews.ListForItem(999)
	assert.ErrorIs(t, err, services.ErrItemNotFound)
}

func TestScoresAverageAndDefault(t *testing.T) {
	e := newEnv(t)
	user := e.createCustomer(t, "09120000001")
	rest := e.createRestaurant(t, "09120000002", "5.00")
	item := e.createItem(t, rest.ID, "Pizza", "10.00", "0")

	// no reviews yet
	score, err := e.Reviews.RestaurantScore(rest.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)

	for _, s := range []int{5, 3} {
		orderID := e.completedOrder(t, user.ID, rest.ID, item.ID)
		_, err := e.Reviews.Create(user.ID, &services.CreateReviewIn{OrderID: orderID, Score: s})
		require.NoError(t, err)
	}

	score, err = e.Reviews.RestaurantScore(rest.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, score)

	itemScore, err := e.Reviews.ItemScore(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, itemScore)
}

func TestScoreRoundsToTwoDecimals(t *testing.T) {
	e := newEnv(t)
	user := e.createCustomer(t, "09120000001")
	rest := e.createRestaurant(t, "09120000002", "5.00")
	item := e.createItem(t, rest.ID, "Pizza", "10.00", "0")

	for _, s := range []int{5, 4, 4} {
		orderID := e.completedOrder(t, user.ID, rest.ID, item.ID)
		_, err := e.Reviews.Create(user.ID, &services.CreateReviewIn{OrderID: orderID, Score: s})
		require.NoError(t, err)
	}

	score, err := e.Reviews.RestaurantScore(rest.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.33, score)
}
