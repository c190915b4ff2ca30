package checkoutControllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/StinkyJeans/Ecommerce-sub000/middleware"
	"github.com/StinkyJeans/Ecommerce-sub000/models"
	"github.com/StinkyJeans/Ecommerce-sub000/testutil"
)

func newCheckoutRouter(db *gorm.DB, p middleware.Principal) *gin.Engine {
	r := testutil.NewRouter()
	r.POST("/user/checkout", testutil.AsPrincipal(p), Checkout(db))
	return r
}

func alice() middleware.Principal {
	return middleware.Principal{Username: "alice", Email: "alice@x.com", Role: models.RoleUser}
}

func seedCheckout(t *testing.T, db *gorm.DB) (models.CartItem, models.ShippingAddress) {
	t.Helper()
	item := models.CartItem{
		Username:    "alice",
		ProductID:   "PRD-000001",
		ProductName: "Gaming PC",
		Price:       decimal.RequireFromString("10.00"),
		Quantity:    3,
	}
	require.NoError(t, db.Create(&item).Error)

	address := models.ShippingAddress{
		Username:     "alice",
		FullName:     "Alice Example",
		PhoneNumber:  "5551234567",
		AddressLine1: "1 Main Street",
		City:         "Springfield",
		Province:     "IL",
		PostalCode:   "62701",
		Country:      "USA",
		IsDefault:    true,
	}
	require.NoError(t, db.Create(&address).Error)
	return item, address
}

func checkoutRequest(item models.CartItem, addressID uint) map[string]interface{} {
	return map[string]interface{}{
		"username": "alice",
		"items": []map[string]interface{}{{
			"cart_item_id":    item.ID,
			"product_id":      item.ProductID,
			"product_name":    item.ProductName,
			"price":           "10.00",
			"quantity":        item.Quantity,
			"seller_username": "sam",
		}},
		"shipping_address_id": addressID,
		"payment_method":      "cod",
		"delivery_option":     "standard",
	}
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	db := testutil.OpenDB(t)
	item, address := seedCheckout(t, db)
	r := newCheckoutRouter(db, alice())

	w := testutil.PerformJSON(t, r, "POST", "/user/checkout", checkoutRequest(item, address.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, db.Find(&orders).Error)
	require.Len(t, orders, 1)
	assert.Equal(t, "alice", orders[0].Username)
	assert.Equal(t, "sam", orders[0].SellerUsername)
	assert.Equal(t, models.OrderStatusPending, orders[0].Status)
	// total_amount == price * quantity, decimal-exact
	assert.True(t, orders[0].TotalAmount.Equal(decimal.RequireFromString("30.00")),
		"got total %s", orders[0].TotalAmount)

	var cartCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("username = ?", "alice").Count(&cartCount).Error)
	assert.EqualValues(t, 0, cartCount)
}

func TestCheckoutValidatesItemsBeforeAnyWrite(t *testing.T) {
	db := testutil.OpenDB(t)
	item, address := seedCheckout(t, db)
	r := newCheckoutRouter(db, alice())

	req := checkoutRequest(item, address.ID)
	req["items"] = []map[string]interface{}{
		{"cart_item_id": item.ID, "product_id": "PRD-000001", "product_name": "Gaming PC", "price": "10.00", "quantity": 3},
		{"product_id": "PRD-000002", "product_name": "Broken", "price": "oops", "quantity": 1},
	}
	w := testutil.PerformJSON(t, r, "POST", "/user/checkout", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// fail-fast: nothing was written
	var orderCount, cartCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.CartItem{}).Count(&cartCount).Error)
	assert.EqualValues(t, 0, orderCount)
	assert.EqualValues(t, 1, cartCount)
}

func TestCheckoutOwnership(t *testing.T) {
	db := testutil.OpenDB(t)
	item, address := seedCheckout(t, db)
	bob := middleware.Principal{Username: "bob", Email: "bob@x.com", Role: models.RoleUser}
	r := newCheckoutRouter(db, bob)

	w := testutil.PerformJSON(t, r, "POST", "/user/checkout", checkoutRequest(item, address.ID))
	assert.Equal(t, http.StatusForbidden, w.Code)

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.EqualValues(t, 0, orderCount)
}

func TestCheckoutUnknownAddress(t *testing.T) {
	db := testutil.OpenDB(t)
	item, _ := seedCheckout(t, db)
	r := newCheckoutRouter(db, alice())

	w := testutil.PerformJSON(t, r, "POST", "/user/checkout", checkoutRequest(item, 9999))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutAddressOfAnotherUserRejected(t *testing.T) {
	db := testutil.OpenDB(t)
	item, _ := seedCheckout(t, db)
	other := models.ShippingAddress{
		Username: "bob", FullName: "Bob", PhoneNumber: "5557654321",
		AddressLine1: "2 Side Street", City: "Shelbyville", Province: "IL",
		PostalCode: "62702", Country: "USA",
	}
	require.NoError(t, db.Create(&other).Error)

	r := newCheckoutRouter(db, alice())
	w := testutil.PerformJSON(t, r, "POST", "/user/checkout", checkoutRequest(item, other.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutRollsBackOnFailure(t *testing.T) {
	db := testutil.OpenDB(t)
	item, address := seedCheckout(t, db)
	r := newCheckoutRouter(db, alice())

	// Force the cart-clearing step to fail after the order inserts
	// succeed; the transaction must leave no orphaned orders behind.
	require.NoError(t, db.Migrator().DropTable(&models.CartItem{}))

	w := testutil.PerformJSON(t, r, "POST", "/user/checkout", checkoutRequest(item, address.ID))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.EqualValues(t, 0, orderCount)
}
