package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/sudhakarm/stonemine/internal/domain/models"
	"github.com/sudhakarm/stonemine/internal/server/handlers"
)

// Handlers bundles the HTTP adapters the router wires up.
type Handlers struct {
	Labour  *handlers.LabourHandler
	Sales   *handlers.SalesHandler
	Vendor  *handlers.VendorHandler
	Trip    *handlers.TripHandler
	Finance *handlers.FinanceHandler
	Report  *handlers.ReportHandler
	Master  *handlers.MasterHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	registerValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	labour := r.Group("/labour")
	{
		labour.GET("", h.Labour.List)
		labour.POST("", h.Labour.Create)
		labour.PUT("/:id", h.Labour.Update)
		labour.DELETE("/:id", h.Labour.Delete)
		labour.POST("/attendance", h.Labour.MarkAttendance)
		labour.POST("/advance", h.Labour.CreateAdvance)
		labour.GET("/wages-summary", h.Labour.WagesSummary)
	}

	sales := r.Group("/sales")
	{
		sales.GET("", h.Sales.List)
		sales.POST("", h.Sales.Create)
		sales.GET("/pending-payments", h.Sales.PendingPayments)
		sales.POST("/:id/payment", h.Sales.RecordPayment)
	}

	vendors := r.Group("/vendors")
	{
		vendors.GET("/outstanding", h.Vendor.Outstanding)
		vendors.DELETE("/:id", h.Vendor.Delete)

		vendors.GET("/explosive", h.Vendor.List(models.VendorTypeExplosiveSupplier))
		vendors.POST("/explosive", h.Vendor.Create(models.VendorTypeExplosiveSupplier))
		vendors.PUT("/explosive/:id", h.Vendor.Update(models.VendorTypeExplosiveSupplier))

		vendors.GET("/labour", h.Vendor.List(models.VendorTypeLabourContractor))
		vendors.POST("/labour", h.Vendor.Create(models.VendorTypeLabourContractor))
		vendors.PUT("/labour/:id", h.Vendor.Update(models.VendorTypeLabourContractor))

		vendors.GET("/transport", h.Vendor.List(models.VendorTypeTransportVendor))
		vendors.POST("/transport", h.Vendor.Create(models.VendorTypeTransportVendor))
		vendors.PUT("/transport/:id", h.Vendor.Update(models.VendorTypeTransportVendor))
	}

	trips := r.Group("/trips")
	{
		trips.GET("", h.Trip.List)
		trips.POST("", h.Trip.Create)
		trips.DELETE("/:id", h.Trip.Delete)
		trips.GET("/stats", h.Trip.Stats)
	}

	expenses := r.Group("/expenses")
	{
		expenses.GET("", h.Finance.ListExpenses)
		expenses.POST("", h.Finance.CreateExpense)
		expenses.DELETE("/:id", h.Finance.DeleteExpense)
	}

	income := r.Group("/income")
	{
		income.GET("", h.Finance.ListIncome)
		income.POST("", h.Finance.CreateIncome)
		income.DELETE("/:id", h.Finance.DeleteIncome)
	}

	reports := r.Group("/reports")
	{
		reports.GET("/day-book", h.Report.DayBook)
		reports.GET("/profit-loss", h.Report.ProfitLoss)
		reports.GET("/cash-flow", h.Report.CashFlow)
		reports.GET("/summary", h.Report.YearlySummary)
	}

	master := r.Group("/master")
	{
		master.GET("/customers", h.Master.ListCustomers)
		master.POST("/customers", h.Master.CreateCustomer)
		master.DELETE("/customers/:id", h.Master.DeleteCustomer)

		master.GET("/:category", h.Master.ListItems)
		master.POST("/:category", h.Master.CreateItem)
		master.DELETE("/:category/:id", h.Master.DeleteItem)
	}

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

// registerValidators installs the objectid binding tag used by request
// payloads referencing other records.
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
			_, err := primitive.ObjectIDFromHex(fl.Field().String())
			return err == nil
		})
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
