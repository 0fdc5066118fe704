package services_test

import (
	"testing"

	"backend/entity"
	"backend/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *env) cartWithPizza(t *testing.T, userID, restID, itemID uint, count int) *entity.Cart {
	t.Helper()
	cart, err := e.Carts.AddItem(userID, &services.AddItemIn{RestaurantID: restID, ItemID: itemID, Count: count})
	require.NoError(t, err)
	return cart
}

func TestCreateOrderConvertsCartAtomically(t *testing.T) {
	e := newEnv(t)
	user := e.createCustomer(t, "09120000001")
	rest := e.createRestaurant(t, "09120000002", "5.00")
	item := e.createItem(t, rest.ID, "Pizza", "10.00", "20")
	cart := e.cartWithPizza(t, user.ID, rest.ID, item.ID, 2)

	orderID, err := e.Orders.CreateOrder(user.ID, &services.CreateOrderIn{
		CartID:         cart.ID,
		DeliveryMethod: entity.DeliveryMethodDelivery,
		PaymentMethod:  entity.PaymentMethodOnline,
	})
	require.NoError(t, err)

	order, err := e.Orders.DetailForUser(user.ID, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, order.State)
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, item.ID, order.OrderItems[0].ItemID)
	assert.Equal(t, 2, order.OrderItems[0].Count)
	assertDecimal(t, "10.00", order.OrderItems[0].Price)

	// the cart is gone once the order exists
	_, err = e.Carts.GetCart(user.ID, cart.ID)
	assert.ErrorIs(t, err, services.ErrCartNotFound)
}

func TestCreateOrderDeliveryFee(t *testing.T) {
	e := newEnv(t)
	user := e.createCustomer(t, "09120000001")
	rest := e.createRestaurant(t, "09120000002", "5.00")
	item := e.createItem(t, rest.ID, "Pizza", "10.00", "0")

	// delivery waives the fee, pickup charges it
	cart := e.cartWithPizza(t, user.ID, rest.ID, item.ID, 2)
	id, err := e.Orders.CreateOrder(user.ID, &services.CreateOrderIn{
		CartID:         cart.ID,
		DeliveryMethod: entity.DeliveryMethodDelivery,
		PaymentMethod:  entity.PaymentMethodOnline,
	})
	require.NoError(t, err)
	order, err := e.Orders.DetailForUser(user.ID, id)
	require.NoError(t, err)
	assertDecimal(t, "20.00", order.TotalPrice)

	cart = e.cartWithPizza(t, user.ID, rest.ID, item.ID, 2)
	id, err = e.Orders.CreateOrder(user.ID, &services.CreateOrderIn{
		CartID:         cart.ID,
		DeliveryMethod: entity.DeliveryMethodPickup,
		PaymentMethod:  entity.PaymentMethodInPerson,
	})
	require.NoError(t, err)
	order, err = e.Orders.DetailForUser(user.ID, id)
	require.NoError(t, err)
	assertDecimal(t, "25.00", order.TotalPrice)
}

func TestCreateOrderForeignCart(t *testing.T) {
	e := newEnv(t)
	owner := e.createCustomer(t, "09120000001")
	other := e.createCustomer(t, "09120000003")
	rest := e.createRestaurant(t, "09120000002", "5.00")
	item := e.createItem(t, rest.ID, "Pizza", "10.00", "0")
	cart := e.cartWithPizza(t, owner.ID, rest.ID, item.ID, 1)

	_, err := e.Orders.CreateOrder(other.ID, &services.CreateOrderIn{
		CartID:         cart.ID,
		DeliveryMethod: entity.DeliveryMethodDelivery,
		PaymentMethod:  entity.PaymentMethodOnline,
	})
	assert.ErrorIs(t, err, services.ErrCartNotFound)

	// the owner's cart survives the rejected attempt
	_, err = e.Carts.GetCart(owner.ID, cart.ID)
	assert.NoError(t, err)
}

func TestOrderIgnoresLaterItemEdits(t *testing.T) {
	e := newEnv(t)
	user := e.createCustomer(t, "09120000001")
	rest := e.createRestaurant(t, "09120000002", "0.00")
	item := e.createItem(t, rest.ID, "Pizza", "10.00", "0")
	cart := e.cartWithPizza(t, user.ID, rest.ID, item.ID, 1)

	id, err := e.Orders.CreateOrder(user.ID, &services.CreateOrderIn{
		CartID:         cart.ID,
		DeliveryMethod: entity.DeliveryMethodDelivery,
		PaymentMethod:  entity.PaymentMethodOnline,
	})
	require.NoError(t, err)

	require.NoError(t, e.DB.Model(item).Update("price", "99.00").Error)

	order, err := e.Orders.DetailForUser(user.ID, id)
	require.NoError(t, err)
	assertDecimal(t, "10.00", order.OrderItems[0].Price)
	assertDecimal(t, "10.00", order.TotalPrice)
}

func createTestOrder(t *testing.T, e *env, userID, restID, itemID uint) uint {
	t.Helper()
	cart := e.cartWithPizza(t, userID, restID, itemID, 1)
	id, err := e.Orders.CreateOrder(userID, &services.CreateOrderIn{
		CartID:         cart.ID,
		DeliveryMethod: entity.DeliveryMethodDelivery,
		PaymentMethod:  entity.PaymentMethodOnline,
	})
	require.NoError(t, err)
	return id
}

func TestUpdateStateFollowsTransitions(t *testing.T) {
	e := newEnv(t)
	user := e.createCustomer(t, "09120000001")
	rest := e.createRestaurant(t, "09120000002", "5.00")
	item := e.createItem(t, rest.ID, "Pizza", "10.00", "0")
	orderID := createTestOrder(t, e, user.ID, rest.ID, item.ID)

	require.NoError(t, e.Orders.UpdateState(rest.ManagerID, orderID, entity.OrderPreparing))
	require.NoError(t, e.Orders.UpdateState(rest.ManagerID, orderID, entity.OrderCompleted))

	// completed is terminal
	err := e.Orders.UpdateState(rest.ManagerID, orderID, entity.OrderCancelled)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestUpdateStateRejectsSkipsAndUnknowns(t *testing.T) {
	e := newEnv(t)
	user := e.createCustomer(t, "09120000001")
	rest := e.createRestaurant(t, "09120000002", "5.00")
	item := e.createItem(t, rest.ID, "Pizza", "10.00", "0")
	orderID := createTestOrder(t, e, user.ID, rest.ID, item.ID)

	err := e.Orders.UpdateState(rest.ManagerID, orderID, entity.OrderCompleted)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	err = e.Orders.UpdateState(rest.ManagerID, orderID, "shipped")
	assert.ErrorIs(t, err, services.ErrInvalidState)

	// state unchanged after the failed attempts
	order, err := e.Orders.DetailForUser(user.ID, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, order.State)
}

func TestUpdateStateScopedToOwnRestaurant(t *testing.T) {
	e := newEnv(t)
	user := e.createCustomer(t, "09120000001")
	rest := e.createRestaurant(t, "09120000002", "5.00")
	otherRest := e.createRestaurant(t, "09120000004", "3.00")
	item := e.createItem(t, rest.ID, "Pizza", "10.00", "0")
	orderID := createTestOrder(t, e, user.ID, rest.ID, item.ID)

	err := e.Orders.UpdateState(otherRest.ManagerID, orderID, entity.OrderPreparing)
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
}

func TestListForUserNewestFirstWithLimit(t *testing.T) {
	e := newEnv(t)
	user := e.createCustomer(t, "09120000001")
	rest := e.createRestaurant(t, "09120000002", "5.00")
	item := e.createItem(t, rest.ID, "Pizza", "10.00", "0")

	var ids []uint
	for i := 0; i < 3; i++ {
		ids = append(ids, createTestOrder(t, e, user.ID, rest.ID, item.ID))
	}

	orders, err := e.Orders.ListForUser(user.ID, 2)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, ids[2], orders[0].ID)
}

func TestOrderDetailHidesForeignOrders(t *testing.T) {
	e := newEnv(t)
	user := e.createCustomer(t, "09120000001")
	other := e.createCustomer(t, "09120000003")
	rest := e.createRestaurant(t, "09120000002", "5.00")
	item := e.createItem(t, rest.ID, "Pizza", "10.00", "0")
	orderID := createTestOrder(t, e, user.ID, rest.ID, item.ID)

	_, err := e.Orders.DetailForUser(other.ID, orderID)
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
}
