package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"adminconsole/internal/media/sniffer"
	"adminconsole/internal/service"
	"adminconsole/internal/view"
)

const productsPage = "products"

func (h HandlerSet) productsPage(c *gin.Context) (*view.ProductsPage, func(status int)) {
	env, notes := h.pageEnv(c)
	page := view.NewProductsPage(h.apis.Products, env)
	page.SetSearch(c.Query("q"))
	_ = page.Mount(c.Request.Context())
	return page, func(status int) {
		h.render(c, status, productsPage, page.View(), notes)
	}
}

func (h HandlerSet) ListProducts(c *gin.Context) {
	_, render := h.productsPage(c)
	render(http.StatusOK)
}

func (h HandlerSet) NewProduct(c *gin.Context) {
	page, render := h.productsPage(c)
	page.OpenCreate()
	render(http.StatusOK)
}

func (h HandlerSet) ShowProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	page, render := h.productsPage(c)
	if _, found := page.OpenView(id); !found {
		render(http.StatusNotFound)
		return
	}
	render(http.StatusOK)
}

func (h HandlerSet) EditProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	page, render := h.productsPage(c)
	if _, found := page.OpenEdit(id); !found {
		render(http.StatusNotFound)
		return
	}
	render(http.StatusOK)
}

// CreateProduct binds the body over the creation defaults, so omitted fields
// keep their default values.
func (h HandlerSet) CreateProduct(c *gin.Context) {
	page, render := h.productsPage(c)
	d := page.OpenCreate()
	if !bindForm(c, &d.Form) {
		return
	}
	render(statusFor(page.Submit(c.Request.Context())))
}

func (h HandlerSet) UpdateProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	page, render := h.productsPage(c)
	d, found := page.OpenEdit(id)
	if !found {
		render(http.StatusNotFound)
		return
	}
	if !bindForm(c, &d.Form) {
		return
	}
	render(statusFor(page.Submit(c.Request.Context())))
}

func (h HandlerSet) DeleteProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	page, render := h.productsPage(c)
	render(statusFor(page.Delete(c.Request.Context(), id)))
}

// UploadProductImage stores the multipart "file" field and returns the URL
// the product form should carry as imageUrl.
func (h HandlerSet) UploadProductImage(c *gin.Context) {
	if h.uploads == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image_storage_disabled"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_required"})
		return
	}
	defer file.Close()

	result, err := h.uploads.Upload(c.Request.Context(), service.UploadInput{
		File:         file,
		DeclaredType: sniffer.MimeTypeFromHTTP(http.Header(header.Header)),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedImage), errors.Is(err, service.ErrEmptyImage):
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrImageTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		default:
			h.log.Error().Err(err).Msg("product image upload failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload_failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}
