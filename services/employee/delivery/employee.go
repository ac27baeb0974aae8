package delivery

import (
	"strconv"

	"employee/config"
	"employee/domain"
	"employee/middleware"

	"github.com/gofiber/fiber/v2"
)

type employeeHandler struct {
	euc domain.EmployeeUseCase
}

func NewEmployeeDelivery(app *fiber.App, uc domain.EmployeeUseCase) {
	handler := &employeeHandler{
		euc: uc,
	}

	route := app.Group("/employees")
	route.Post("", handler.deliveryCreateEmployee)
	route.Get("", handler.deliveryGetAllEmployee)
	route.Get("/:id", handler.deliveryGetEmployeeByID)
	route.Put("/:id", handler.deliveryUpdateEmployee)
	route.Delete("/:id", handler.deliveryDeleteEmployee)
}

func (eh *employeeHandler) deliveryCreateEmployee(c *fiber.Ctx) error {
	var payload domain.EmployeePayload
	if err := c.BodyParser(&payload); err != nil {
		return respondWithError(c, domain.NewInvalidInputError(domain.MsgInvalidBody, err), "CreateEmployee")
	}

	id, err := eh.euc.CreateEmployeeUC(c.UserContext(), &payload)
	if err != nil {
		return respondWithError(c, err, "CreateEmployee")
	}

	config.PrintLogInfo(middleware.RequestID(c), fiber.StatusCreated, "CreateEmployee")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Employee added successfully!",
		"id":      id,
	})
}

func (eh *employeeHandler) deliveryGetAllEmployee(c *fiber.Ctx) error {
	employees, err := eh.euc.GetAllEmployeeUC(c.UserContext())
	if err != nil {
		return respondWithError(c, err, "GetAllEmployee")
	}

	if employees == nil {
		employees = &[]domain.Employee{}
	}

	config.PrintLogInfo(middleware.RequestID(c), fiber.StatusOK, "GetAllEmployee")
	return c.Status(fiber.StatusOK).JSON(employees)
}

func (eh *employeeHandler) deliveryGetEmployeeByID(c *fiber.Ctx) error {
	id, ok := employeeID(c)
	if !ok {
		return respondWithError(c, domain.NewNotFoundError(domain.MsgEmployeeNotFound), "GetEmployeeByID")
	}

	employee, err := eh.euc.GetEmployeeByIDUC(c.UserContext(), id)
	if err != nil {
		return respondWithError(c, err, "GetEmployeeByID")
	}

	config.PrintLogInfo(middleware.RequestID(c), fiber.StatusOK, "GetEmployeeByID")
	return c.Status(fiber.StatusOK).JSON(employee)
}

func (eh *employeeHandler) deliveryUpdateEmployee(c *fiber.Ctx) error {
	id, ok := employeeID(c)
	if !ok {
		return respondWithError(c, domain.NewNotFoundError(domain.MsgEmployeeNotFound), "UpdateEmployee")
	}

	var payload domain.EmployeePayload
	if err := c.BodyParser(&payload); err != nil {
		return respondWithError(c, domain.NewInvalidInputError(domain.MsgInvalidBody, err), "UpdateEmployee")
	}

	if err := eh.euc.UpdateEmployeeUC(c.UserContext(), id, &payload); err != nil {
		return respondWithError(c, err, "UpdateEmployee")
	}

	config.PrintLogInfo(middleware.RequestID(c), fiber.StatusOK, "UpdateEmployee")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Employee updated successfully!",
	})
}

func (eh *employeeHandler) deliveryDeleteEmployee(c *fiber.Ctx) error {
	id, ok := employeeID(c)
	if !ok {
		return respondWithError(c, domain.NewNotFoundError(domain.MsgEmployeeNotFound), "DeleteEmployee")
	}

	if err := eh.euc.DeleteEmployeeUC(c.UserContext(), id); err != nil {
		return respondWithError(c, err, "DeleteEmployee")
	}

	config.PrintLogInfo(middleware.RequestID(c), fiber.StatusOK, "DeleteEmployee")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Employee deleted successfully!",
	})
}

// employeeID parses the :id segment. An id that is not an integer can never
// match a row.
func employeeID(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

func respondWithError(c *fiber.Ctx, err error, operation string) error {
	status := fiber.StatusInternalServerError
	switch domain.KindOf(err) {
	case domain.KindInvalidInput:
		status = fiber.StatusBadRequest
	case domain.KindNotFound:
		status = fiber.StatusNotFound
	}

	if domain.IsUniqueViolation(err) {
		config.GetLogrusInstance().WithField("request_id", middleware.RequestID(c)).
			Warnf("%s rejected by unique constraint: %v", operation, err)
	} else if status == fiber.StatusInternalServerError {
		config.GetLogrusInstance().WithField("request_id", middleware.RequestID(c)).
			Errorf("%s failed: %v", operation, err)
	}

	config.PrintLogInfo(middleware.RequestID(c), status, operation)
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
