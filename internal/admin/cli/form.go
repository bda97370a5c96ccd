package cli

import (
	"context"
	"fmt"
	"strconv"

	v1 "useradmin/pkg/api/v1"
)

// Create ведет оператора по форме создания пользователя и сохраняет
// результат. Обязательные поля проверяются локально до отправки.
func (a *App) Create(ctx context.Context) error {
	req := &v1.CreateUserRequest{}

	var err error
	if req.Name, err = GetSimpleText(a.reader, "Name", a.out); err != nil {
		return err
	}
	if req.Surname, err = GetSimpleText(a.reader, "Surname", a.out); err != nil {
		return err
	}
	if req.Email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}

	if req.Name == "" || req.Surname == "" || req.Email == "" {
		fmt.Fprintln(a.out, "Name, surname and email are required")
		return nil
	}
	if err := a.validate.Var(req.Email, "email,max=150"); err != nil {
		fmt.Fprintln(a.out, "Email address is not valid")
		return nil
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	if len(password) == 0 {
		fmt.Fprintln(a.out, "Password is required")
		return nil
	}
	req.Password = string(password)

	if req.Phone, err = GetOptionalText(a.reader, "Phone", a.out); err != nil {
		return err
	}
	if req.Age, err = a.readOptionalAge(); err != nil {
		return err
	}
	if req.Country, err = GetOptionalText(a.reader, "Country", a.out); err != nil {
		return err
	}
	if req.District, err = GetOptionalText(a.reader, "District", a.out); err != nil {
		return err
	}
	if req.Role, err = GetOptionalText(a.reader, "Role", a.out); err != nil {
		return err
	}

	if err := a.dataCtx.CreateUser(ctx, req); err != nil {
		return err
	}

	a.renderCurrent()
	return nil
}

// Edit загружает пользователя, собирает частичное обновление и предлагает
// сохранить, удалить или отменить. Пустой ввод оставляет поле без
// изменений, clearMark очищает его.
func (a *App) Edit(ctx context.Context, id int64) error {
	user, err := a.dataCtx.GetUser(ctx, id)
	if err != nil {
		return err
	}

	req := &v1.UpdateUserRequest{ID: user.ID}

	if req.Name, err = GetPatchText(a.reader, "Name", user.Name, a.out); err != nil {
		return err
	}
	if req.Surname, err = GetPatchText(a.reader, "Surname", user.Surname, a.out); err != nil {
		return err
	}
	if req.Email, err = GetPatchText(a.reader, "Email", user.Email, a.out); err != nil {
		return err
	}
	if req.Email != nil {
		if err := a.validate.Var(*req.Email, "email,max=150"); err != nil {
			fmt.Fprintln(a.out, "Email address is not valid")
			return nil
		}
	}
	if req.Phone, err = GetPatchText(a.reader, "Phone", strOrEmpty(user.Phone), a.out); err != nil {
		return err
	}
	if req.Age, err = a.readPatchAge(user.Age); err != nil {
		return err
	}
	if req.Country, err = GetPatchText(a.reader, "Country", strOrEmpty(user.Country), a.out); err != nil {
		return err
	}
	if req.District, err = GetPatchText(a.reader, "District", strOrEmpty(user.District), a.out); err != nil {
		return err
	}
	if req.Role, err = GetPatchText(a.reader, "Role", strOrEmpty(user.Role), a.out); err != nil {
		return err
	}

	change, err := GetSimpleText(a.reader, "Change password? (y/N)", a.out)
	if err != nil {
		return err
	}
	if change == "y" || change == "Y" {
		password, err := GetPassword(a.out)
		if err != nil {
			return err
		}
		if len(password) > 0 {
			text := string(password)
			req.Password = &text
		}
	}

	action, err := GetSimpleText(a.reader, "Action: (s)ave, (d)elete, (c)ancel", a.out)
	if err != nil {
		return err
	}

	switch action {
	case "s", "save":
		if err := a.dataCtx.UpdateUser(ctx, req); err != nil {
			return err
		}
	case "d", "delete":
		confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Delete user %d? (y/N)", id), a.out)
		if err != nil {
			return err
		}
		if confirm != "y" && confirm != "Y" {
			fmt.Fprintln(a.out, "Cancelled")
			return nil
		}
		if err := a.dataCtx.DeleteUser(ctx, id); err != nil {
			return err
		}
	default:
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	a.renderCurrent()
	return nil
}

func (a *App) readOptionalAge() (*int, error) {
	text, err := GetOptionalText(a.reader, "Age", a.out)
	if err != nil {
		return nil, err
	}
	if text == nil {
		return nil, nil
	}
	age, err := strconv.Atoi(*text)
	if err != nil || age < 0 {
		fmt.Fprintln(a.out, "Age must be a non-negative number, skipped")
		return nil, nil
	}
	return &age, nil
}

func (a *App) readPatchAge(current *int) (*int, error) {
	text, err := GetPatchText(a.reader, "Age", intOrEmpty(current), a.out)
	if err != nil {
		return nil, err
	}
	if text == nil {
		return nil, nil
	}
	if *text == "" {
		zero := 0
		return &zero, nil
	}
	age, err := strconv.Atoi(*text)
	if err != nil || age < 0 {
		fmt.Fprintln(a.out, "Age must be a non-negative number, skipped")
		return nil, nil
	}
	return &age, nil
}
