package api

// Backend endpoint paths, relative to the configured base URL.
const (
	loginPath    = "/api/seller/login"
	registerPath = "/api/seller/register"

	dashboardPath  = "/api/seller/dashboard/seller"
	ownProfilePath = "/api/seller/ownprofile"

	productPath           = "/api/seller/product"
	productByIDPathF      = "/api/seller/product/%d"
	productsBySellerPathF = "/api/seller/products/seller/%s"

	brandsPath          = "/api/seller/brands"
	brandsBySellerPathF = "/api/seller/brands/seller/%s"

	orderedItemsPath     = "/api/seller/ordereditems"
	orderItemPathF       = "/api/order/orderitems/%d"
	orderItemUpdatePathF = "/api/order/update/orderitem/%d"

	returnsBySellerPathF = "/api/return/sellerid/%s"

	complaintsBySellerPathF   = "/api/complaint/sellerid/%s"
	complaintStatusPathF      = "/api/complaint/update/status/%d"
	complaintCreatePath       = "/api/complaint/create"
	complaintSellerToUserPath = "/api/complaint/create/sellertouser"
)
