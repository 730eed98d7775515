package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(h.corsOptions()))
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)

	router.Route("/users", func(r chi.Router) {
		r.Post("/signUp", h.signUp)
		r.Post("/signIn", h.signIn)
		r.Patch("/forgetPassword", h.forgetPassword)
		r.Get("/getProfileData/{userId}", h.getProfileData)
		r.Get("/getAccountsByRecoveryEmail", h.getAccountsByRecoveryEmail)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Patch("/signOut", h.signOut)
			r.Put("/updateAccount", h.updateAccount)
			r.Delete("/deleteAccount", h.deleteAccount)
			r.Get("/getUserAccountData", h.getUserAccountData)
			r.Patch("/updatePassword", h.updatePassword)
		})
	})

	router.Route("/companies", func(r chi.Router) {
		r.Get("/getApplicationsForJobs/{jobId}", h.getApplicationsForJob)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/createCompany", h.createCompany)
			r.Put("/updateCompany/{companyId}", h.updateCompany)
			r.Delete("/deleteCompany/{companyId}", h.deleteCompany)
			r.Get("/getAllCompaniesForHR", h.getAllCompaniesForHR)
			r.Get("/getCompanyData/{companyId}", h.getCompanyData)
			r.Get("/searchCompanyByName", h.searchCompanyByName)
			r.Get("/collectTheApplicationAndCreateExcelSheet/{companyId}", h.exportApplications)
		})
	})

	router.Route("/jobs", func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/addJob", h.addJob)
		r.Put("/updateJob/{jobId}", h.updateJob)
		r.Delete("/deleteJob/{jobId}", h.deleteJob)
		r.Get("/getJob/{jobId}", h.getJob)
		r.Get("/getAllJobsWithTheirCmpanies", h.getAllJobsWithTheirCompanies)
		r.Get("/getLastThreeJobsWithTheirCompanies", h.getLastThreeJobsWithTheirCompanies)
		r.Get("/getAllJobsForACompany/{companyId}", h.getAllJobsForACompany)
		r.Get("/getAllJobsForAHr", h.getAllJobsForAHr)
		r.Get("/getAllJobsThatMatchFilter", h.getAllJobsThatMatchFilter)
		r.Post("/applyForAJob/{jobId}", h.applyForAJob)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) corsOptions() cors.Options {
	origins := h.cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Encoding", accessTokenHeader, traceIDHeader},
		ExposedHeaders: []string{traceIDHeader, "Content-Disposition"},
		MaxAge:         300,
	}
}
