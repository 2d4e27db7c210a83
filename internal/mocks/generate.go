package mocks

//go:generate mockery --name ComplaintStore --srcpkg github.com/cxinsights/cx-dashboard/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
