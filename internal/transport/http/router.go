package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/book_library/internal/handlers"
	authmw "github.com/Skotchmaster/book_library/internal/middleware/auth"
)

type Deps struct {
	Guard          *authmw.Guard
	AuthHandler    *handlers.AuthHandler
	UserHandler    *handlers.UserHandler
	LibraryHandler *handlers.LibraryHandler
	CatalogHandler *handlers.CatalogHandler
	SearchHandler  *handlers.SearchHandler
	AdminHandler   *handlers.AdminHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	e.POST("/auth/register", d.AuthHandler.Register)
	e.POST("/auth/token", d.AuthHandler.Login)

	e.GET("/books", d.CatalogHandler.ListBooks)
	e.GET("/books/search", d.SearchHandler.Search)
	e.GET("/book/:id", d.CatalogHandler.GetBook)
	e.GET("/genres", d.CatalogHandler.ListGenres)

	user := e.Group("/user", d.Guard.RequireUser)
	user.GET("", d.UserHandler.Profile)
	user.PUT("/password", d.UserHandler.ChangePassword)
	user.GET("/my_books", d.LibraryHandler.MyBooks)
	user.POST("/add_book", d.LibraryHandler.AddBook)
	user.POST("/my_books/:id", d.LibraryHandler.UpdateEntry)
	user.DELETE("/my_books/:id", d.LibraryHandler.DeleteEntry)

	admin := e.Group("/admin", d.Guard.RequireAdmin)
	admin.GET("", d.AdminHandler.ListUsers)
	admin.GET("/user/:id", d.AdminHandler.GetUser)
	admin.DELETE("/user/:id", d.AdminHandler.DeleteUser)
	admin.POST("/add_book", d.AdminHandler.AddBook)
	admin.POST("/add_author", d.AdminHandler.AddAuthor)
	admin.POST("/add_genre", d.AdminHandler.AddGenre)
	admin.DELETE("/book/:id", d.AdminHandler.DeleteBook)
}
