package servicerequest

import (
	"github.com/concierge-pm/api/internal/serviceorder"
	"github.com/concierge-pm/api/internal/workorder"
	"gorm.io/gorm"
)

// Repository wraps data access for service requests and their order links.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) ListAll() ([]ServiceRequest, error) {
	var requests []ServiceRequest
	err := r.DB.Find(&requests).Error
	return requests, err
}

func (r *Repository) ListByStatus(status string) ([]ServiceRequest, error) {
	var requests []ServiceRequest
	err := r.DB.Where("status = ?", status).Find(&requests).Error
	return requests, err
}

func (r *Repository) ListByResident(residentID string) ([]ServiceRequest, error) {
	var requests []ServiceRequest
	err := r.DB.Where("resident_id = ?", residentID).Find(&requests).Error
	return requests, err
}

func (r *Repository) ListBySpace(spaceID string) ([]ServiceRequest, error) {
	var requests []ServiceRequest
	err := r.DB.Where("space_id = ?", spaceID).Find(&requests).Error
	return requests, err
}

func (r *Repository) FindByID(id string) (*ServiceRequest, error) {
	var sr ServiceRequest
	if err := r.DB.First(&sr, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sr, nil
}

func (r *Repository) Create(sr *ServiceRequest) error {
	return r.DB.Create(sr).Error
}

func (r *Repository) Update(sr *ServiceRequest) error {
	return r.DB.Save(sr).Error
}

func (r *Repository) DeleteByID(id string) error {
	res := r.DB.Delete(&ServiceRequest{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

/* ========================= order link junctions ========================= */

func (r *Repository) LinkServiceOrder(requestID, orderID string) (*ServiceRequestServiceOrder, error) {
	link := ServiceRequestServiceOrder{ServiceRequestID: requestID, ServiceOrderID: orderID}
	if err := r.DB.Create(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *Repository) LinkWorkOrder(requestID, orderID string) (*ServiceRequestWorkOrder, error) {
	link := ServiceRequestWorkOrder{ServiceRequestID: requestID, WorkOrderID: orderID}
	if err := r.DB.Create(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// ServiceOrdersForRequest returns the service orders linked to a request.
func (r *Repository) ServiceOrdersForRequest(requestID string) ([]serviceorder.ServiceOrder, error) {
	var orders []serviceorder.ServiceOrder
	err := r.DB.
		Table("service_orders").
		Select("service_orders.*").
		Joins("JOIN service_request_service_orders ON service_request_service_orders.service_order_id = service_orders.id").
		Where("service_request_service_orders.service_request_id = ?", requestID).
		Find(&orders).Error
	return orders, err
}

// WorkOrdersForRequest returns the work orders linked to a request.
func (r *Repository) WorkOrdersForRequest(requestID string) ([]workorder.WorkOrder, error) {
	var orders []workorder.WorkOrder
	err := r.DB.
		Table("work_orders").
		Select("work_orders.*").
		Joins("JOIN service_request_work_orders ON service_request_work_orders.work_order_id = work_orders.id").
		Where("service_request_work_orders.service_request_id = ?", requestID).
		Find(&orders).Error
	return orders, err
}

// RequestsForServiceOrder returns the requests a service order responds to.
func (r *Repository) RequestsForServiceOrder(orderID string) ([]ServiceRequest, error) {
	var requests []ServiceRequest
	err := r.DB.
		Table("service_requests").
		Select("service_requests.*").
		Joins("JOIN service_request_service_orders ON service_request_service_orders.service_request_id = service_requests.id").
		Where("service_request_service_orders.service_order_id = ?", orderID).
		Find(&requests).Error
	return requests, err
}

// RequestsForWorkOrder returns the requests a work order responds to.
func (r *Repository) RequestsForWorkOrder(orderID string) ([]ServiceRequest, error) {
	var requests []ServiceRequest
	err := r.DB.
		Table("service_requests").
		Select("service_requests.*").
		Joins("JOIN service_request_work_orders ON service_request_work_orders.service_request_id = service_requests.id").
		Where("service_request_work_orders.work_order_id = ?", orderID).
		Find(&requests).Error
	return requests, err
}
