package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/prismworks/timesheet-console/internal/backend"
	"github.com/prismworks/timesheet-console/internal/listing"
	"github.com/prismworks/timesheet-console/internal/models"
	"github.com/prismworks/timesheet-console/internal/session"
)

// CustomerHandler serves the customer management screens.
type CustomerHandler struct {
	api      backend.CustomerAPI
	pageSize int
	log      *zap.SugaredLogger
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(api backend.CustomerAPI, pageSize int, log *zap.SugaredLogger) *CustomerHandler {
	return &CustomerHandler{api: api, pageSize: pageSize, log: log}
}

// List fetches all customers and filters by name, email, phone, and
// active/inactive text.
func (h *CustomerHandler) List(c *gin.Context) {
	s := session.Get(c)
	customers, err := h.api.ListCustomers(c.Request.Context(), s.Token)
	if err != nil {
		h.log.Errorw("list customers failed", "error", err)
		session.Flash(c, session.NoticeError, "Could not load customers")
		customers = nil
	}

	query := c.Query("q")
	pageNum, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	page := listing.Apply(customers, func(cu models.Customer) []string {
		return []string{cu.CustomerName, cu.Email, cu.PhoneNumber, listing.ActiveLabel(cu.Active)}
	}, query, pageNum, h.pageSize)

	renderPage(c, http.StatusOK, "customer_list.tmpl", gin.H{
		"Title": "Customer Management",
		"Query": query,
		"Page":  page,
	})
}

// ShowForm renders the add/update form.
func (h *CustomerHandler) ShowForm(c *gin.Context) {
	data := gin.H{
		"Title":    "Add Customer",
		"Customer": models.Customer{Active: true},
	}

	if idStr := c.Param("id"); idStr != "" {
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			session.Flash(c, session.NoticeError, "Invalid customer ID")
			c.Redirect(http.StatusFound, "/dashboard/customer")
			return
		}
		s := session.Get(c)
		customer, err := h.api.GetCustomer(c.Request.Context(), s.Token, id)
		if err != nil {
			h.log.Errorw("get customer failed", "id", id, "error", err)
			session.Flash(c, session.NoticeError, failureMessage(err, "Could not load the customer"))
			c.Redirect(http.StatusFound, "/dashboard/customer")
			return
		}
		data["Title"] = "Update Customer"
		data["Customer"] = *customer
		data["ID"] = id
	}

	renderPage(c, http.StatusOK, "customer_form.tmpl", data)
}

// Submit creates or updates a customer.
func (h *CustomerHandler) Submit(c *gin.Context) {
	type CustomerForm struct {
		CustomerName string `form:"customerName" binding:"required"`
		Email        string `form:"email" binding:"required"`
		PhoneNumber  string `form:"phoneNumber"`
		Address1     string `form:"address1"`
		Address2     string `form:"address2"`
		City         string `form:"city"`
		State        string `form:"state"`
		Country      string `form:"country"`
		ZipCode      string `form:"zipCode"`
		Active       bool   `form:"active"`
	}

	var form CustomerForm
	bindErr := c.ShouldBind(&form)

	customer := models.Customer{
		CustomerName: form.CustomerName,
		Email:        form.Email,
		PhoneNumber:  form.PhoneNumber,
		Address1:     form.Address1,
		Address2:     form.Address2,
		City:         form.City,
		State:        form.State,
		Country:      form.Country,
		ZipCode:      form.ZipCode,
		Active:       form.Active,
	}

	rerender := func(status int, msg string) {
		data := gin.H{
			"Title":    "Add Customer",
			"Customer": customer,
			"Notices":  []session.Notice{{Kind: session.NoticeError, Message: msg}},
		}
		if idStr := c.Param("id"); idStr != "" {
			data["Title"] = "Update Customer"
			data["ID"] = idStr
		}
		renderPage(c, status, "customer_form.tmpl", data)
	}

	if bindErr != nil {
		rerender(http.StatusBadRequest, "Please fill in all required fields")
		return
	}

	s := session.Get(c)
	var err error
	if idStr := c.Param("id"); idStr != "" {
		var id uint64
		id, err = strconv.ParseUint(idStr, 10, 64)
		if err == nil {
			customer.CustomerID = id
			err = h.api.UpdateCustomer(c.Request.Context(), s.Token, id, customer)
		}
	} else {
		err = h.api.CreateCustomer(c.Request.Context(), s.Token, customer)
	}

	if err != nil {
		h.log.Errorw("save customer failed", "error", err)
		rerender(http.StatusBadGateway, failureMessage(err, "Could not save the customer"))
		return
	}

	session.Flash(c, session.NoticeSuccess, "Customer saved successfully")
	c.Redirect(http.StatusFound, "/dashboard/customer")
}
