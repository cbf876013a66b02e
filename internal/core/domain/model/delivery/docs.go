// Package delivery implements the Delivery aggregate and its status workflow.
//
//	AGUARDANDO -> RETIRADA -> ENTREGUE -> DEVOLVIDA
//
// Every transition is its own method with its own gate:
//   - MarkAvailable: ADMIN, from any status except AGUARDANDO
//   - Withdraw: COURIER, from AGUARDANDO, assigns the caller
//   - Complete: the assigned courier, from RETIRADA, photo required
//   - Return: any authenticated caller, from ENTREGUE
//
// A failed gate leaves the aggregate untouched. Persisting a transition is a
// compare-and-swap on the status observed before the call, see DeliveryRepository.
package delivery
