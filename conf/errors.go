package conf

import "fmt"

// ParameterNotFoundError reports an operation referencing a parameter name
// the configuration does not declare.
type ParameterNotFoundError struct {
	Param string
}

func (e *ParameterNotFoundError) Error() string {
	return fmt.Sprintf("no parameter named %q in configuration", e.Param)
}

// ConditionFailedError reports an explicit condition that evaluated false.
type ConditionFailedError struct {
	Condition string
}

func (e *ConditionFailedError) Error() string {
	return fmt.Sprintf("condition %q failed", e.Condition)
}
